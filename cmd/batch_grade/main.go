package main

import (
	"bufio"
	"context"
	"flag"
	"fmt" // For initial error printing before logger is up
	"os"
	"path/filepath"
	"sort"
	"strings"

	"essay-grader/internal/adapter/visionllm"
	"essay-grader/internal/config"
	"essay-grader/internal/domain"
	"essay-grader/internal/export"
	"essay-grader/internal/logger"
	"essay-grader/internal/service"
	"essay-grader/internal/token"
	"essay-grader/internal/usage"

	"go.uber.org/zap"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

func main() {
	imageDir := flag.String("images", "", "directory containing essay images (jpg/jpeg/png)")
	namesPath := flag.String("names", "", "optional file with one student name per line, matched to images in sorted order")
	gradeLevel := flag.String("grade-level", "", "student grade level band")
	leniency := flag.Int("leniency", 5, "grading leniency from 1 (very strict) to 10 (very lenient)")
	instructions := flag.String("instructions", "", "assignment instructions given to students")
	title := flag.String("title", "", "report title for the PDF export")
	csvPath := flag.String("csv", "", "write a CSV report to this path")
	pdfPath := flag.String("pdf", "", "write a PDF report to this path")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		// Logger might not be initialized yet, so use fmt for this critical error
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *imageDir == "" {
		logger.Get().Fatal("No image directory given; pass -images")
	}

	items, err := collectBatchItems(*imageDir, *namesPath)
	if err != nil {
		logger.Get().Fatal("Failed to collect batch items", zap.Error(err))
	}
	if len(items) == 0 {
		logger.Get().Warn("No essay images found in directory", zap.String("dir", *imageDir))
	}

	vision, err := visionllm.NewOpenAIVisionClient(cfg.OpenAIAPIKey, logger.Get())
	if err != nil {
		logger.Get().Fatal("Failed to initialize vision client", zap.Error(err))
	}

	recorder, err := usage.NewRecorder(cfg.Usage.LogPath)
	if err != nil {
		logger.Get().Fatal("Failed to open usage log", zap.Error(err))
	}
	defer recorder.Sync()

	estimator := token.NewEstimator(visionllm.Model, logger.Get())
	grader := service.NewEssayGradingService(vision, estimator, recorder, visionllm.Model, logger.Get())
	batch := service.NewBatchGradingService(grader, logger.Get())

	rubric := rubricFromConfig(cfg)
	results, summary := batch.GradeBatch(context.Background(), items, rubric, *instructions, *gradeLevel, *leniency)

	fmt.Printf("Graded %d essays: %d successful, %d failed\n", summary.TotalEssays, summary.SuccessfulEssays, summary.FailedEssays)
	fmt.Printf("Total estimated cost: %s\n", summary.TotalCostText)
	fmt.Printf("Total time: %s (average per essay: %s)\n", summary.TotalTime, summary.AverageTimePerEssay)

	if *csvPath != "" {
		if err := writeCSVReport(*csvPath, results); err != nil {
			logger.Get().Fatal("Failed to write CSV report", zap.Error(err))
		}
		fmt.Printf("CSV report written to %s\n", *csvPath)
	}

	if *pdfPath != "" {
		info := export.AssignmentInfo{
			Title:        *title,
			Instructions: *instructions,
			GradeLevel:   *gradeLevel,
		}
		pdfBytes, err := export.GeneratePDF(results, info)
		if err != nil {
			logger.Get().Fatal("Failed to generate PDF report", zap.Error(err))
		}
		if err := os.WriteFile(*pdfPath, pdfBytes, 0o644); err != nil {
			logger.Get().Fatal("Failed to write PDF report", zap.Error(err))
		}
		fmt.Printf("PDF report written to %s\n", *pdfPath)
	}
}

// collectBatchItems lists essay images in dir (sorted by file name) and pairs
// them with student names from namesPath. Names are padded with empty strings
// or truncated to match the image count; the batch service substitutes the
// unnamed-student placeholder for empty names.
func collectBatchItems(dir, namesPath string) ([]domain.BatchItem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	var names []string
	if namesPath != "" {
		names, err = readNames(namesPath)
		if err != nil {
			return nil, err
		}
	}

	items := make([]domain.BatchItem, 0, len(paths))
	for i, path := range paths {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		items = append(items, domain.BatchItem{ImagePath: path, StudentName: name})
	}
	return items, nil
}

func readNames(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read names file %s: %w", path, err)
	}
	defer file.Close()

	var names []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		names = append(names, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan names file %s: %w", path, err)
	}
	return names, nil
}

func writeCSVReport(path string, results []*domain.GradingResult) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV report %s: %w", path, err)
	}
	defer file.Close()
	return export.WriteCSV(file, results)
}

// rubricFromConfig builds the rubric declared in config.yaml, falling back to
// the default seed rubric when none is configured.
func rubricFromConfig(cfg *config.Config) *domain.Rubric {
	if len(cfg.Rubric) == 0 {
		return domain.DefaultRubric()
	}
	rubric := domain.NewRubric()
	for _, criterion := range cfg.Rubric {
		rubric.Add(criterion.Name, criterion.Description)
	}
	return rubric
}
