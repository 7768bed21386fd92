// Package netx contains small plain-HTTP helpers that do not belong to the
// API client, such as fetching files from absolute URLs (avatars, resumes).
package netx

import (
	"fmt"
	"io"
	"net/http"
	"os"
)

// DownloadToFile fetches url with a GET request and writes the body to path.
// Any non-200 status is reported as an error together with the response body.
func DownloadToFile(url string, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("download failed: %s; body: %s", resp.Status, string(b))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
