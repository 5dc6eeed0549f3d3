package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shauryaa19/legallens/internal/contract"
)

func WriteJSON(analysisID, outDir string, a *contract.Analysis) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(outDir, analysisID+".json")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		return "", err
	}
	return path, nil
}
