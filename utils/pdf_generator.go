package utils

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// GenerateDeedPDF prints deed prose to an A4 PDF with headless Chrome. The
// text arrives with composer markup (** bold, newline paragraph breaks) and
// is converted to HTML before printing.
func GenerateDeedPDF(title, text string) ([]byte, error) {
	body := RenderDeedHTML(text)

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<title>` + title + `</title>
		<style>
		@page {
			size: A4;
			margin: 40px;
		}
		body {
			font-family: "Noto Sans Tamil", "Latha", sans-serif;
			font-size: 13px;
			line-height: 1.8;
			margin: 0;
			padding: 0;
			text-align: justify;
		}
		</style>
		</head>
		<body>` + string(body) + `</body></html>`

	// Chrome needs a file URL; render via a temp HTML file like the rest of
	// the print pipeline.
	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "deed_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err := chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
