// Command svgmap binds annotation records to the shapes of an SVG
// file and emits interactive artifacts: the indexed SVG markup, a
// standalone HTML export, a raster preview, or a browser screenshot
// of the export.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Drominaman/svgmap/annotation"
	"github.com/Drominaman/svgmap/editor"
	"github.com/Drominaman/svgmap/export"
	"github.com/Drominaman/svgmap/preview"
	"github.com/Drominaman/svgmap/svgdom"
	"github.com/Drominaman/svgmap/tooltip"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <command> <file.svg>\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "\nCommands:")
	fmt.Fprintln(os.Stderr, "  index        Assign region identifiers and print the ordered id list.")
	fmt.Fprintln(os.Stderr, "  export       Emit a standalone interactive HTML document.")
	fmt.Fprintln(os.Stderr, "  preview      Render the bound regions to a PNG.")
	fmt.Fprintln(os.Stderr, "  screenshot   Screenshot the HTML export in a headless browser (PNG).")
	fmt.Fprintln(os.Stderr, "\nFlags:")
	flag.PrintDefaults()
}

func main() {
	outputFile := flag.String("o", "", "output file path (default: stdout)")
	settingsFile := flag.String("settings", "", "tooltip settings JSON file")
	annotationsFile := flag.String("annotations", "", "annotation records JSON file (id to record)")
	title := flag.String("title", "", "document title for the HTML export")
	hovered := flag.String("hover", "", "region id rendered in the hover color (preview only)")
	flag.Usage = usage
	flag.Parse()

	// Local overrides may live in a .env file; a missing file is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not read .env: %v", err)
	}

	args := flag.Args()
	if len(args) != 2 {
		usage()
		os.Exit(1)
	}
	command := strings.ToLower(args[0])
	svgFile := args[1]

	doc, err := loadDocument(svgFile)
	if err != nil {
		log.Fatalf("Error loading SVG '%s': %v", svgFile, err)
	}

	store := annotation.NewMemStore()
	if *annotationsFile != "" {
		if err := loadAnnotations(*annotationsFile, store); err != nil {
			log.Fatalf("Error loading annotations '%s': %v", *annotationsFile, err)
		}
	}
	settings, err := loadSettings(*settingsFile)
	if err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}

	session := editor.NewSession(doc, store, settings)
	ids := session.Bind()
	log.Printf("Indexed %d regions, %d with annotation data.", len(ids), len(store.Keys()))

	out, closeOut, err := openOutput(*outputFile)
	if err != nil {
		log.Fatalf("Error creating output file '%s': %v", *outputFile, err)
	}
	defer closeOut()

	switch command {
	case "index":
		for _, id := range ids {
			if _, err := fmt.Fprintln(out, id); err != nil {
				log.Fatalf("Error writing output: %v", err)
			}
		}
	case "export":
		page, err := renderExport(doc, store, settings, *title)
		if err != nil {
			log.Fatalf("Error generating export: %v", err)
		}
		if _, err := io.WriteString(out, page); err != nil {
			log.Fatalf("Error writing output: %v", err)
		}
	case "preview":
		img, err := preview.Render(doc, store, settings, *hovered)
		if err != nil {
			log.Fatalf("Error rendering preview: %v", err)
		}
		if err := preview.EncodePNG(out, img); err != nil {
			log.Fatalf("Error encoding PNG: %v", err)
		}
	case "screenshot":
		page, err := renderExport(doc, store, settings, *title)
		if err != nil {
			log.Fatalf("Error generating export: %v", err)
		}
		if err := screenshotPage(page, out); err != nil {
			log.Fatalf("Error taking screenshot: %v", err)
		}
	default:
		log.Fatalf("Unknown command %q. Supported commands: index, export, preview, screenshot", command)
	}
}

func renderExport(doc *svgdom.Document, store *annotation.MemStore, settings tooltip.Settings, title string) (string, error) {
	src, err := doc.Serialize()
	if err != nil {
		return "", fmt.Errorf("serializing SVG: %w", err)
	}
	return export.Generate(src, store.Snapshot(), settings, title)
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing output file '%s': %v", path, err)
		}
	}, nil
}
