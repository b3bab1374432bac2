package cli

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/healophile/internal/client/api"
)

// uploadToPresignedURL delivers file content straight to object storage.
// A test seam so CLI tests do not need a real S3 endpoint.
var uploadToPresignedURL = func(url string, file []byte) error {
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(file))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upload failed: %s", resp.Status)
	}
	return nil
}

func formatFile(f api.File) string {
	flags := make([]string, 0, 2)
	if f.IsShared {
		flags = append(flags, "shared with "+strings.Join(f.SharedWithNames, ", "))
	}
	if f.IntegrityVerified {
		flags = append(flags, "verified")
	}
	suffix := ""
	if len(flags) > 0 {
		suffix = " [" + strings.Join(flags, "; ") + "]"
	}
	return fmt.Sprintf("%s  %s (%s, %s)%s", f.ID, f.Name, f.Category, f.SizeLabel, suffix)
}

func (a *App) printFiles(files []api.File) {
	if len(files) == 0 {
		printlnFn("No files.")
		return
	}
	for _, f := range files {
		printlnFn(formatFile(f))
	}
}

// List shows every file visible to the logged-in user.
func (a *App) List(ctx context.Context) error {
	files, err := a.api.Files(ctx, "", "")
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	a.printFiles(files)
	return nil
}

// Search prompts for a name query and a category and lists matching files.
func (a *App) Search(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Search by name (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category: all, document, image or shared", os.Stdout)
	if err != nil {
		return err
	}

	files, err := a.api.Files(ctx, query, category)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	a.printFiles(files)
	return nil
}

// Upload registers a local file with the portal and pushes its content to
// the presigned URL the server hands back.
func (a *App) Upload(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter path to file", os.Stdout)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	res, err := a.api.Upload(ctx, filepath.Base(path), int64(len(content)))
	if err != nil {
		printlnFn("Upload failed:", err.Error())
		return err
	}

	if err := uploadToPresignedURL(res.UploadURL, content); err != nil {
		printlnFn("Transfer failed:", err.Error())
		return err
	}

	printlnFn("Uploaded:", formatFile(res.Record))
	return nil
}

// Share shows the roster and shares a file with the chosen doctor.
func (a *App) Share(ctx context.Context) error {
	if err := a.Doctors(ctx); err != nil {
		return err
	}

	fileID, err := getSimpleText(a.reader, "Enter file id", os.Stdout)
	if err != nil {
		return err
	}
	recipientID, err := getSimpleText(a.reader, "Enter doctor id", os.Stdout)
	if err != nil {
		return err
	}

	outcome, err := a.api.Share(ctx, fileID, recipientID)
	if err != nil {
		printlnFn("Share failed:", err.Error())
		return err
	}
	printlnFn("Result:", outcome)
	return nil
}

// Verify asks the server to rerun the integrity check and shows the results.
func (a *App) Verify(ctx context.Context) error {
	files, err := a.api.Verify(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	a.printFiles(files)
	return nil
}

// Doctors lists the practitioner roster.
func (a *App) Doctors(ctx context.Context) error {
	doctors, err := a.api.Doctors(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	for _, d := range doctors {
		printlnFn(fmt.Sprintf("%s  %s (%s)", d.ID, d.DisplayName, d.SpecialtyLabel))
	}
	return nil
}

// Download prints a short-lived URL for fetching a file's content.
func (a *App) Download(ctx context.Context) error {
	fileID, err := getSimpleText(a.reader, "Enter file id", os.Stdout)
	if err != nil {
		return err
	}

	url, err := a.api.DownloadURL(ctx, fileID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Download URL:", url)
	return nil
}
