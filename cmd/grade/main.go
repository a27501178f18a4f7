package main

import (
	"context"
	"flag"
	"fmt" // For initial error printing before logger is up
	"os"

	"essay-grader/internal/adapter/visionllm"
	"essay-grader/internal/config"
	"essay-grader/internal/domain"
	"essay-grader/internal/logger"
	"essay-grader/internal/service"
	"essay-grader/internal/token"
	"essay-grader/internal/usage"
	"essay-grader/internal/validation"

	"go.uber.org/zap"
)

func main() {
	imagePath := flag.String("image", "", "path to the handwritten essay image (jpg/jpeg/png)")
	studentName := flag.String("student", "", "student name for the report")
	gradeLevel := flag.String("grade-level", "", "student grade level band")
	leniency := flag.Int("leniency", 5, "grading leniency from 1 (very strict) to 10 (very lenient)")
	instructions := flag.String("instructions", "", "assignment instructions given to students")
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

	rubric := rubricFromConfig(cfg)

	req := &domain.GradingRequest{
		ImagePath:    *imagePath,
		Rubric:       rubric,
		Instructions: *instructions,
		GradeLevel:   *gradeLevel,
		Leniency:     *leniency,
	}
	if errs := validation.NewValidator().ValidateGradingRequest(req); errs.HasErrors() {
		logger.Get().Fatal("Invalid grading request", zap.String("errors", errs.Error()))
	}

	// Fails fast when OPENAI_API_KEY is absent.
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

	result, err := grader.GradeEssay(context.Background(), req)
	if err != nil {
		logger.Get().Fatal("Essay grading failed", zap.Error(err))
	}

	if *studentName != "" {
		result.StudentName = *studentName
		fmt.Printf("Student: %s\n\n", result.StudentName)
	}
	fmt.Println(result.GradingText)
	fmt.Println()
	fmt.Println(result.CostText)
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
