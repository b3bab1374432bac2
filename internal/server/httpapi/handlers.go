package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/healophile/internal/common"
	"github.com/dmitrijs2005/healophile/internal/server/records"
	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
	Role        string `json:"role" binding:"required"`
}

func (s *HTTPServer) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, err := common.ParseRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Username, req.Password, req.DisplayName, role)
	if err != nil {
		s.logger.Error(c.Request.Context(), "register failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          user.ID,
		"username":    user.UserName,
		"displayName": user.DisplayName,
		"role":        string(user.Role),
	})
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *HTTPServer) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, pair, err := s.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		s.logger.Error(c.Request.Context(), "login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
		"user": gin.H{
			"id":          user.ID,
			"username":    user.UserName,
			"displayName": user.DisplayName,
			"role":        string(user.Role),
		},
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func (s *HTTPServer) handleRefreshToken(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := s.users.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrRefreshTokenExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token expired"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

func (s *HTTPServer) handleRoster(c *gin.Context) {
	c.JSON(http.StatusOK, s.records.Roster())
}

func (s *HTTPServer) handleListFiles(c *gin.Context) {
	category := c.Query("category")
	if category == records.FacetShared && actorRole(c) == common.RoleDoctor {
		c.JSON(http.StatusBadRequest, gin.H{"error": "the shared facet is only available to patients"})
		return
	}

	recs, err := s.records.List(c.Request.Context(), actorID(c), actorRole(c), c.Query("q"), category)
	if err != nil {
		s.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

type uploadRequest struct {
	Name string `json:"name" binding:"required"`
	Size int64  `json:"size" binding:"required"`
}

func (s *HTTPServer) handleUpload(c *gin.Context) {
	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := s.records.Upload(c.Request.Context(), actorID(c), req.Name, req.Size)
	if err != nil {
		if errors.Is(err, common.ErrUnsupportedFileType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type"})
			return
		}
		s.respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"record":    res.Record,
		"uploadUrl": res.UploadURL,
	})
}

type shareRequest struct {
	RecipientID string `json:"recipientId" binding:"required"`
}

func (s *HTTPServer) handleShare(c *gin.Context) {
	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := s.records.Share(c.Request.Context(), c.Param("id"), req.RecipientID)
	if err != nil {
		s.respondStoreError(c, err)
		return
	}

	switch outcome {
	case records.Shared:
		c.JSON(http.StatusOK, gin.H{"outcome": outcome.String()})
	case records.AlreadyShared:
		c.JSON(http.StatusConflict, gin.H{"outcome": outcome.String()})
	default:
		c.JSON(http.StatusNotFound, gin.H{"outcome": outcome.String()})
	}
}

func (s *HTTPServer) handleVerify(c *gin.Context) {
	recs, err := s.records.VerifyAll(c.Request.Context())
	if err != nil {
		s.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (s *HTTPServer) handleDownloadURL(c *gin.Context) {
	url, err := s.records.DownloadURL(c.Request.Context(), actorID(c), actorRole(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		s.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// respondStoreError maps store failures to responses. A corrupted record
// document is reported loudly so nobody mistakes it for an empty portal.
func (s *HTTPServer) respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, common.ErrCorruptedStore) {
		s.logger.Error(c.Request.Context(), "records store corrupted", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "medical file records are corrupted and need attention"})
		return
	}
	s.logger.Error(c.Request.Context(), "request failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
