package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/chromedp/chromedp"
)

const screenshotTimeout = 60 * time.Second

// screenshotPage renders the exported HTML in a headless browser and
// writes a PNG of the map container. The page travels as a data URI,
// so no temp file is needed.
func screenshotPage(page string, out io.Writer) error {
	dataURI := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(page))

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()

	ctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	ctx, cancelTimeout := context.WithTimeout(ctx, screenshotTimeout)
	defer cancelTimeout()

	var buf []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`#svg-map-container svg`, chromedp.ByQuery),
		chromedp.Screenshot(`#svg-map-container`, &buf, chromedp.ByQuery),
	}

	log.Println("Rendering export in headless browser...")
	if err := chromedp.Run(ctx, tasks); err != nil {
		return fmt.Errorf("chromedp execution failed: %w", err)
	}
	if len(buf) == 0 {
		return fmt.Errorf("screenshot buffer is empty")
	}
	_, err := out.Write(buf)
	return err
}
