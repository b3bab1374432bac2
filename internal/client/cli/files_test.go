package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/healophile/internal/client/api"
	"github.com/dmitrijs2005/healophile/internal/client/config"
)

func newAppForTest(t *testing.T, handler http.HandlerFunc, input string) (*App, *[]string) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var printed []string
	origPrint := printlnFn
	printlnFn = func(args ...any) (int, error) {
		printed = append(printed, fmt.Sprintln(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	reader := bufio.NewReader(strings.NewReader(input))

	app := &App{
		config: &config.Config{ServerURL: srv.URL, RequestTimeout: 5 * time.Second},
		api:    api.NewClient(srv.URL, 5*time.Second),
		reader: reader,
	}
	return app, &printed
}

func TestList_PrintsFiles(t *testing.T) {
	app, printed := newAppForTest(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]api.File{
			{ID: "f1", Name: "Blood Test.pdf", Category: "document", SizeLabel: "2.3 MB", IntegrityVerified: true},
		})
	}, "")

	if err := app.List(context.Background()); err != nil {
		t.Fatalf("List error: %v", err)
	}
	joined := strings.Join(*printed, "")
	if !strings.Contains(joined, "Blood Test.pdf") || !strings.Contains(joined, "verified") {
		t.Fatalf("unexpected output: %q", joined)
	}
}

func TestSearch_SendsQuery(t *testing.T) {
	var gotQuery, gotCategory string
	app, _ := newAppForTest(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotCategory = r.URL.Query().Get("category")
		_ = json.NewEncoder(w).Encode([]api.File{})
	}, "blood\ndocument\n")

	if err := app.Search(context.Background()); err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if gotQuery != "blood" || gotCategory != "document" {
		t.Fatalf("query not forwarded: q=%q category=%q", gotQuery, gotCategory)
	}
}

func TestUpload_FullFlow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.png")
	if err := os.WriteFile(path, []byte("image-bytes"), 0o600); err != nil {
		t.Fatal(err)
	}

	app, printed := newAppForTest(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name string `json:"name"`
			Size int64  `json:"size"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Name != "scan.png" || req.Size != int64(len("image-bytes")) {
			t.Fatalf("unexpected intake: %+v", req)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.UploadResponse{
			Record:    api.File{ID: "new", Name: "scan.png", Category: "image"},
			UploadURL: "http://minio/put",
		})
	}, path+"\n")

	var transferred []byte
	origUpload := uploadToPresignedURL
	uploadToPresignedURL = func(url string, file []byte) error {
		if url != "http://minio/put" {
			t.Fatalf("unexpected presigned url: %q", url)
		}
		transferred = file
		return nil
	}
	t.Cleanup(func() { uploadToPresignedURL = origUpload })

	if err := app.Upload(context.Background()); err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	if string(transferred) != "image-bytes" {
		t.Fatalf("content not transferred: %q", transferred)
	}
	if !strings.Contains(strings.Join(*printed, ""), "Uploaded:") {
		t.Fatalf("no confirmation printed: %v", *printed)
	}
}

func TestShare_PromptsAndReportsOutcome(t *testing.T) {
	app, printed := newAppForTest(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/share") {
			_ = json.NewEncoder(w).Encode(map[string]string{"outcome": "shared"})
			return
		}
		// roster
		_ = json.NewEncoder(w).Encode([]api.Doctor{
			{ID: "doc123", DisplayName: "Dr. Arjun Singh", SpecialtyLabel: "Cardiology"},
		})
	}, "f1\ndoc123\n")

	if err := app.Share(context.Background()); err != nil {
		t.Fatalf("Share error: %v", err)
	}
	joined := strings.Join(*printed, "")
	if !strings.Contains(joined, "Dr. Arjun Singh") || !strings.Contains(joined, "shared") {
		t.Fatalf("unexpected output: %q", joined)
	}
}

func TestDownload_PrintsURL(t *testing.T) {
	app, printed := newAppForTest(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"url": "http://minio/get/key"})
	}, "f2\n")

	if err := app.Download(context.Background()); err != nil {
		t.Fatalf("Download error: %v", err)
	}
	if !strings.Contains(strings.Join(*printed, ""), "http://minio/get/key") {
		t.Fatalf("url not printed: %v", *printed)
	}
}
