// Command scan runs the report extraction pipeline over a local file
// and prints the parameter record as JSON. Useful for checking how a
// report scans without standing up the API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"

	"github.com/SOHANBARIK/HeartDisease-Prediction/internal/ocr"
	"github.com/SOHANBARIK/HeartDisease-Prediction/internal/scan"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <report-file>", os.Args[0])
	}

	path := os.Args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))

	// No repo or storage: scan only, no archiving.
	service := scan.NewService(ocr.NewTesseract(), nil, nil)

	rec, err := service.ScanReport(context.Background(), "local", data, contentType, filepath.Base(path))
	if err != nil {
		log.Fatal("scan failed:", err)
	}

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(out))
}
