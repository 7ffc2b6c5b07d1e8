package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/focusbridge/focusbridge-backend/internal/adaptation"
	types "github.com/focusbridge/focusbridge-backend/internal/domain"
	repos "github.com/focusbridge/focusbridge-backend/internal/data/repos/lessons"
	"github.com/focusbridge/focusbridge-backend/internal/pkg/logger"
)

// ImageGenerator is the slice of the OpenAI client the visualizer run needs.
type ImageGenerator interface {
	GenerateImageURL(ctx context.Context, prompt string) (string, error)
}

// ObjectStore is where generated images are copied so they outlive the
// generator's time-limited URLs.
type ObjectStore interface {
	UploadFile(ctx context.Context, key string, contentType string, file io.Reader) error
	GetPublicURL(key string) string
}

type GenerateVisualizerInput struct {
	LessonPlanID uuid.UUID `json:"lessonPlanId"`
	Concept      string    `json:"concept"`
	GradeLevel   string    `json:"gradeLevel"`
	Description  string    `json:"description"`
}

type VisualizerService interface {
	GenerateVisualizer(ctx context.Context, input GenerateVisualizerInput) (*types.Visualizer, error)
	GenerateVisualAids(ctx context.Context, plan *types.LessonPlan) ([]*types.Visualizer, error)
}

// At most this many concepts per plan get a visual aid in one run.
const maxVisualAidConcepts = 2

type visualizerService struct {
	db          *gorm.DB
	log         *logger.Logger
	images      ImageGenerator
	store       ObjectStore
	visualizers repos.VisualizerRepo
	httpClient  *http.Client
	now         func() time.Time
}

func NewVisualizerService(
	db *gorm.DB,
	log *logger.Logger,
	images ImageGenerator,
	store ObjectStore,
	visualizers repos.VisualizerRepo,
) VisualizerService {
	return &visualizerService{
		db:          db,
		log:         log.With("service", "VisualizerService"),
		images:      images,
		store:       store,
		visualizers: visualizers,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
		now:         time.Now,
	}
}

// GenerateVisualizer requests one image for a concept, tries to re-home it in
// the object store, and records it. Fetch/upload failures fall back to the
// generator's own URL and are only logged; the run fails only when no image
// URL could be obtained at all or the database insert fails.
func (vs *visualizerService) GenerateVisualizer(ctx context.Context, input GenerateVisualizerInput) (*types.Visualizer, error) {
	if err := validateGenerateVisualizerInput(input); err != nil {
		return nil, err
	}

	runLog := vs.log.With("lesson_plan_id", input.LessonPlanID, "concept", input.Concept)

	imageURL, err := vs.images.GenerateImageURL(ctx, visualizerPrompt(input.Concept, input.GradeLevel))
	if err != nil {
		return nil, &GenerationError{Stage: "visualizer image", Err: err}
	}

	permanentURL := imageURL
	if vs.store != nil {
		key := fmt.Sprintf("%s/%s-%d.png", input.LessonPlanID, conceptSlug(input.Concept), vs.now().UnixMilli())
		if storedURL, storeErr := vs.storeImage(ctx, imageURL, key); storeErr != nil {
			runLog.Warn("storing generated image failed, keeping original url", "error", storeErr)
		} else {
			permanentURL = storedURL
		}
	}

	description := input.Description
	if description == "" {
		description = fmt.Sprintf("Visual representation of %s for %s students", input.Concept, input.GradeLevel)
	}

	visualizer, err := vs.visualizers.Insert(ctx, nil, &types.Visualizer{
		LessonPlanID: input.LessonPlanID,
		Concept:      input.Concept,
		ImageURL:     permanentURL,
		GradeLevel:   input.GradeLevel,
		Description:  description,
	})
	if err != nil {
		return nil, &PersistenceError{Op: "visualizer insert", Err: err}
	}

	runLog.Info("visualizer generated", "image_url", visualizer.ImageURL)
	return visualizer, nil
}

// GenerateVisualAids extracts the key concepts from a plan's original content
// and generates one visualizer per concept, best-effort. A failed concept is
// logged and skipped; the run errors only when nothing could be generated.
func (vs *visualizerService) GenerateVisualAids(ctx context.Context, plan *types.LessonPlan) ([]*types.Visualizer, error) {
	concepts := adaptation.ExtractConcepts(plan.OriginalContent)
	if len(concepts) > maxVisualAidConcepts {
		concepts = concepts[:maxVisualAidConcepts]
	}

	runLog := vs.log.With("lesson_plan_id", plan.ID)

	var visualizers []*types.Visualizer
	var lastErr error
	for _, concept := range concepts {
		visualizer, err := vs.GenerateVisualizer(ctx, GenerateVisualizerInput{
			LessonPlanID: plan.ID,
			Concept:      concept,
			GradeLevel:   plan.GradeLevel,
			Description:  fmt.Sprintf("Visual aid for %s in %s", concept, plan.Subject),
		})
		if err != nil {
			runLog.Warn("visual aid generation failed for concept", "concept", concept, "error", err)
			lastErr = err
			continue
		}
		visualizers = append(visualizers, visualizer)
	}
	if len(visualizers) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return visualizers, nil
}

// storeImage downloads the generated image and re-uploads it to the object
// store, returning the permanent public URL.
func (vs *visualizerService) storeImage(ctx context.Context, imageURL, key string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build image request: %w", err)
	}
	resp, err := vs.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch generated image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch generated image: status %d", resp.StatusCode)
	}

	imageBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read generated image: %w", err)
	}

	if err := vs.store.UploadFile(ctx, key, "image/png", bytes.NewReader(imageBytes)); err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return vs.store.GetPublicURL(key), nil
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

func conceptSlug(concept string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(concept), "-")
	return strings.Trim(slug, "-")
}

func validateGenerateVisualizerInput(input GenerateVisualizerInput) error {
	if input.LessonPlanID == uuid.Nil {
		return newValidationError("missing required field: lessonPlanId")
	}
	if input.Concept == "" {
		return newValidationError("missing required field: concept")
	}
	if input.GradeLevel == "" {
		return newValidationError("missing required field: gradeLevel")
	}
	return nil
}
