package cmd

import (
	"archive/zip"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const (
	leafletZipURL = "https://leafletjs-cdn.s3.amazonaws.com/content/leaflet/v1.9.4/leaflet.zip"
	turfURL       = "https://cdn.jsdelivr.net/npm/@turf/turf@7/turf.min.js"
)

var downloadAssetsFlags struct {
	Dir string
}

var downloadAssetsCmd = &cobra.Command{
	Use:   "download-assets",
	Short: "Download the Leaflet and Turf bundles into the static directory",
	Run: func(_ *cobra.Command, _ []string) {
		if err := downloadAssets(downloadAssetsFlags.Dir); err != nil {
			log.Fatalf("failed to download assets: %v", err)
		}
		log.Info("downloaded assets", "dir", downloadAssetsFlags.Dir)
	},
}

func init() {
	downloadAssetsCmd.Flags().StringVar(&downloadAssetsFlags.Dir, "dir", "web/static", "Directory to place the downloaded assets in")
	rootCmd.AddCommand(downloadAssetsCmd)
}

func downloadAssets(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	zipPath := filepath.Join(os.TempDir(), "leaflet.zip")
	if err := downloadFile(leafletZipURL, zipPath); err != nil {
		return err
	}
	defer os.Remove(zipPath) //nolint:errcheck

	wanted := map[string]bool{
		"leaflet.css":            true,
		"leaflet-src.esm.js":     true,
		"leaflet-src.esm.js.map": true,
	}
	if err := extractFiles(zipPath, dir, wanted); err != nil {
		return err
	}

	return downloadFile(turfURL, filepath.Join(dir, "turf.min.js"))
}

func downloadFile(url, dest string) error {
	resp, err := http.Get(url) //nolint:gosec
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s fetching %s", resp.Status, url)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	_, err = io.Copy(f, resp.Body)
	return err
}

func extractFiles(zipPath, dir string, wanted map[string]bool) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer r.Close() //nolint:errcheck

	for _, f := range r.File {
		name := filepath.Base(f.Name)
		if !wanted[name] {
			continue
		}

		src, err := f.Open()
		if err != nil {
			return err
		}

		dst, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			src.Close() //nolint:errcheck,gosec
			return err
		}

		_, err = io.Copy(dst, src) //nolint:gosec
		src.Close()                //nolint:errcheck,gosec
		dst.Close()                //nolint:errcheck,gosec
		if err != nil {
			return err
		}
		delete(wanted, name)
	}

	if len(wanted) > 0 {
		return fmt.Errorf("archive is missing %d expected files", len(wanted))
	}
	return nil
}
