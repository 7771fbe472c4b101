package game

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// errExportFailed reports that raylib could not write the trail image.
var errExportFailed = errors.New("exporting trail image failed")

// SaveSnapshot writes the site state to dir as JSON and the current trail
// surface beside it as PNG. It returns the JSON path.
func (g *Game) SaveSnapshot(dir string) (string, error) {
	path, err := g.site.SaveSnapshot(dir, nil)
	if err != nil {
		return "", err
	}

	pngPath := strings.TrimSuffix(path, ".json") + ".png"
	if err := g.writeTrailPNG(pngPath); err != nil {
		return path, fmt.Errorf("writing %s: %w", pngPath, err)
	}
	slog.Info("trail image saved", "path", pngPath)
	return path, nil
}

func (g *Game) writeTrailPNG(path string) error {
	if g.trailTex != nil {
		if !g.trailTex.ExportPNG(path) {
			return errExportFailed
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := g.trailImage.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
