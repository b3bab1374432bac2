package models

import (
	"time"

	"github.com/dmitrijs2005/healophile/internal/common"
)

type User struct {
	ID           string
	UserName     string
	PasswordHash []byte
	DisplayName  string
	Role         common.Role
	CreatedAt    time.Time
}
