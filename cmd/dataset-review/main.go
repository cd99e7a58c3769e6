// Command dataset-review renders the annotated videos of a dataset for
// inspection: every frame with its screen outlines drawn in, every
// non-outlier screen rectified into an upright image, and a fixed-size
// preview of every matching document page, all written as PNG files to an
// output directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/video699/research-dataset/dataset"
	"github.com/video699/research-dataset/internal/imagecache"
	"github.com/video699/research-dataset/internal/ocr"
	"github.com/video699/research-dataset/internal/render"
	"github.com/video699/research-dataset/rectify"
	"github.com/video699/research-dataset/sampling"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	datasetDir := flag.String("dataset", ".", "dataset directory containing "+dataset.AnnotationFilename)
	outDir := flag.String("out", "review", "output directory for rendered frames, screens and pages")
	folds := flag.Int("folds", sampling.DefaultFolds, "number of cross-validation folds (0 reviews every video)")
	seed := flag.Int64("seed", sampling.DefaultSeed, "shuffle seed for fold sampling")
	withOutliers := flag.Bool("outliers", false, "also render screens classified as outliers")
	ocrLang := flag.String("ocr", "", "recognize text on rectified screens using this Tesseract language")
	version := flag.Bool("version", false, "print version information")
	flag.Parse()

	if *version {
		fmt.Printf("dataset-review %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if *ocrLang != "" && !ocr.Enabled() {
		log.Print("OCR requested but not compiled in; rebuild with -tags ocr")
	}

	log.Printf("Processing the dataset in %s ...", *datasetDir)
	d, err := dataset.Load(*datasetDir)
	if err != nil {
		var structural *dataset.StructuralError
		var referential *dataset.ReferentialError
		if errors.As(err, &structural) || errors.As(err, &referential) {
			log.Fatalf("Bad dataset: %v", err)
		}
		log.Fatalf("Failed to load dataset: %v", err)
	}

	nonMatched := 0
	for _, s := range d.Screens {
		if len(s.MatchingPages) == 0 {
			nonMatched++
		}
	}
	log.Print("Done processing the dataset, which contains:")
	log.Printf("- %d videos containing %d frames with %d screens (%d non-matched) and %d keyrefs, and",
		len(d.Videos), len(d.Frames), len(d.Screens), nonMatched, len(d.KeyRefs))
	log.Printf("- %d documents containing %d pages.", len(d.Documents), len(d.Pages))

	videos := d.Videos
	if *folds > 0 {
		videos = sampling.Sample(d.Videos, *folds, *seed)
		log.Printf("Sampled %d of %d videos for %d-fold evaluation.", len(videos), len(d.Videos), *folds)
	}

	if err := review(videos, *outDir, *withOutliers, *ocrLang); err != nil {
		log.Fatalf("Review failed: %v", err)
	}
}

func review(videos []*dataset.Video, outDir string, withOutliers bool, ocrLang string) error {
	cache := imagecache.New()
	for _, video := range videos {
		videoOut := filepath.Join(outDir, filepath.Base(video.DirName))
		if err := os.MkdirAll(videoOut, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		for _, frame := range video.Frames {
			if err := reviewFrame(cache, frame, videoOut, withOutliers, ocrLang); err != nil {
				return err
			}
		}
		// Frame and page images of one video are not revisited.
		cache.Clear()
	}
	return nil
}

func reviewFrame(cache *imagecache.Cache, frame *dataset.Frame, outDir string, withOutliers bool, ocrLang string) error {
	frameImg, err := cache.Load(frame.FileName)
	if err != nil {
		return err
	}

	annotated := render.AnnotateFrame(frameImg, frame.Screens)
	name := fmt.Sprintf("frame-%06d.png", frame.Number)
	if err := imaging.Save(annotated, filepath.Join(outDir, name)); err != nil {
		return fmt.Errorf("failed to save annotated frame: %w", err)
	}

	for i, screen := range frame.Screens {
		if !withOutliers && screen.IsOutlier() {
			continue
		}

		cropped, err := rectify.Rectify(frameImg, screen.Bounds)
		if err != nil {
			var geomErr *rectify.GeometryError
			if errors.As(err, &geomErr) {
				// A degenerate region spoils one screen, not the run.
				log.Printf("Skipping screen %d of frame %d: %v", i+1, frame.Number, err)
				continue
			}
			return err
		}
		screenName := fmt.Sprintf("frame-%06d-screen-%d-%s.png", frame.Number, i+1, screen.Condition)
		if err := imaging.Save(cropped, filepath.Join(outDir, screenName)); err != nil {
			return fmt.Errorf("failed to save rectified screen: %w", err)
		}

		if ocrLang != "" && ocr.Enabled() {
			text, err := ocr.ScreenText(cropped, ocrLang)
			if err != nil {
				log.Printf("OCR failed for %s: %v", screenName, err)
			} else if text != "" {
				log.Printf("%s: %q", screenName, text)
			}
		}

		for page := range screen.MatchingPages {
			pageImg, err := cache.Load(page.FileName)
			if err != nil {
				return err
			}
			pageName := fmt.Sprintf("page-%s.png", page.Key)
			if err := imaging.Save(render.PagePreview(pageImg), filepath.Join(outDir, pageName)); err != nil {
				return fmt.Errorf("failed to save page preview: %w", err)
			}
		}
	}
	return nil
}
