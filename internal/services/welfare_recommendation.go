package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/team-modeni/modeni-backend/internal/jobs"
	"github.com/team-modeni/modeni-backend/internal/logger"
	"github.com/team-modeni/modeni-backend/internal/repos"
	"github.com/team-modeni/modeni-backend/internal/types"
)

const (
	// relevanceThreshold is exclusive: a candidate must score strictly
	// above it to survive ranking.
	relevanceThreshold = 0.3

	// maxRecommendations caps how many rows one pipeline run persists.
	maxRecommendations = 5

	// maxButtonResponse caps the synchronous button-path response.
	maxButtonResponse = 4

	// traitContentBonus is the flat affinity bonus added in the
	// trait-known regime when any trait content keyword appears in the
	// program text.
	traitContentBonus = 0.15
)

// WelfareRecommendationService runs the welfare recommendation engine:
// emotion profile -> candidate pool -> weighted scoring -> ranked
// persistence with an always-present rationale, optionally upgraded by
// an asynchronous generation call.
type WelfareRecommendationService interface {
	// ProcessEmotionAndRecommend dispatches the free-text pipeline onto
	// the dedicated pool. The caller is acknowledged immediately.
	ProcessEmotionAndRecommend(user *types.User, emotionText string)

	// ProcessButtonBasedRecommend dispatches the button pipeline onto
	// the dedicated pool.
	ProcessButtonBasedRecommend(user *types.User, emotion types.EmotionKeyword, activity types.WishActivity, enrichReason bool)

	// RecommendByButtons runs the button pipeline synchronously and
	// returns the personalized results.
	RecommendByButtons(ctx context.Context, user *types.User, emotion types.EmotionKeyword, activity types.WishActivity, enrichReason bool) ([]WelfareRecommendationResponse, error)

	GetUserRecommendations(ctx context.Context, userID uuid.UUID) ([]WelfareRecommendationResponse, error)
	GetUnreadRecommendations(ctx context.Context, userID uuid.UUID) ([]WelfareRecommendationResponse, error)
	GetRecommendationDetail(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*WelfareRecommendationResponse, error)
}

type WelfareRecommendationResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Organization   string    `json:"organization"`
	Category       string    `json:"category"`
	TargetRegion   string    `json:"target_region,omitempty"`
	ApplicationURL string    `json:"application_url"`
	ContactNumber  string    `json:"contact_number"`
	Target         string    `json:"target"`
	Location       string    `json:"location"`
	Schedule       string    `json:"schedule"`
	Score          float64   `json:"score"`
	Reason         string    `json:"reason"`
	IsClicked      bool      `json:"is_clicked"`
	IsApplied      bool      `json:"is_applied"`
	CreatedAt      time.Time `json:"created_at"`
}

type welfareRecommendationService struct {
	db          *gorm.DB
	log         *logger.Logger
	programRepo repos.WelfareProgramRepo
	recRepo     repos.WelfareRecommendationRepo
	emotionSvc  EmotionAnalysisService
	openai      OpenAIClient
	pool        *jobs.Pool
	cache       RecommendationCache
}

// NewWelfareRecommendationService wires the engine. cache may be nil;
// reads then always hit the database.
func NewWelfareRecommendationService(
	db *gorm.DB,
	baseLog *logger.Logger,
	programRepo repos.WelfareProgramRepo,
	recRepo repos.WelfareRecommendationRepo,
	emotionSvc EmotionAnalysisService,
	openai OpenAIClient,
	pool *jobs.Pool,
	cache RecommendationCache,
) WelfareRecommendationService {
	return &welfareRecommendationService{
		db:          db,
		log:         baseLog.With("service", "WelfareRecommendationService"),
		programRepo: programRepo,
		recRepo:     recRepo,
		emotionSvc:  emotionSvc,
		openai:      openai,
		pool:        pool,
		cache:       cache,
	}
}

// ---- dispatch entry points ----

func (s *welfareRecommendationService) ProcessEmotionAndRecommend(user *types.User, emotionText string) {
	err := s.pool.Submit("emotion_recommend", func(ctx context.Context) error {
		s.log.Info("Starting free-text welfare recommendation", "user_id", user.ID)

		profile := s.emotionSvc.AnalyzeText(ctx, emotionText)

		if !s.emotionSvc.NeedsWelfareRecommendation(profile) {
			s.log.Info("No welfare recommendation needed", "user_id", user.ID)
			return nil
		}

		ranked, err := s.findRecommendedPrograms(ctx, user, profile)
		if err != nil {
			return fmt.Errorf("find recommended programs: %w", err)
		}

		recs, err := s.saveRecommendations(ctx, user, ranked, profile, "", "", false)
		if err != nil {
			return fmt.Errorf("save recommendations: %w", err)
		}

		s.log.Info("Free-text welfare recommendation complete", "user_id", user.ID, "count", len(recs))
		return nil
	})
	if err != nil {
		s.log.Warn("Could not dispatch free-text recommendation", "user_id", user.ID, "error", err)
	}
}

func (s *welfareRecommendationService) ProcessButtonBasedRecommend(user *types.User, emotion types.EmotionKeyword, activity types.WishActivity, enrichReason bool) {
	err := s.pool.Submit("button_recommend", func(ctx context.Context) error {
		s.log.Info("Starting button-based welfare recommendation",
			"user_id", user.ID, "emotion", emotion, "activity", activity)

		// Button-based triggers always proceed: explicit selection is
		// sufficient intent.
		profile := s.emotionSvc.AnalyzeButtonSelection(emotion, activity, user.Personality)

		ranked, err := s.findRecommendedPrograms(ctx, user, profile)
		if err != nil {
			return fmt.Errorf("find recommended programs: %w", err)
		}
		if len(ranked) == 0 {
			s.log.Info("No programs to recommend", "user_id", user.ID)
			return nil
		}

		recs, err := s.saveRecommendations(ctx, user, ranked, profile, emotion, activity, enrichReason)
		if err != nil {
			return fmt.Errorf("save recommendations: %w", err)
		}

		s.log.Info("Button-based welfare recommendation complete", "user_id", user.ID, "count", len(recs))
		return nil
	})
	if err != nil {
		s.log.Warn("Could not dispatch button recommendation", "user_id", user.ID, "error", err)
	}
}

func (s *welfareRecommendationService) RecommendByButtons(ctx context.Context, user *types.User, emotion types.EmotionKeyword, activity types.WishActivity, enrichReason bool) ([]WelfareRecommendationResponse, error) {
	profile := s.emotionSvc.AnalyzeButtonSelection(emotion, activity, user.Personality)

	ranked, err := s.findRecommendedPrograms(ctx, user, profile)
	if err != nil {
		return nil, fmt.Errorf("find recommended programs: %w", err)
	}
	if len(ranked) == 0 {
		return []WelfareRecommendationResponse{}, nil
	}

	recs, err := s.saveRecommendations(ctx, user, ranked, profile, emotion, activity, enrichReason)
	if err != nil {
		return nil, fmt.Errorf("save recommendations: %w", err)
	}

	out := make([]WelfareRecommendationResponse, 0, maxButtonResponse)
	for i, rec := range recs {
		if i == maxButtonResponse {
			break
		}
		out = append(out, toRecommendationResponse(rec, ranked[i]))
	}
	return out, nil
}

// ---- candidate aggregation ----

// findCandidates unions three independent catalog queries: region+age,
// per-keyword tag match, and recommended-category match. Nothing is
// filtered for relevance here; that is the ranker's job.
func (s *welfareRecommendationService) findCandidates(ctx context.Context, user *types.User, profile *types.EmotionProfile) ([]*types.WelfareProgram, error) {
	var byRegionAge, byKeyword, byCategory []*types.WelfareProgram

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if user.Region == nil || user.Age == nil {
			return nil
		}
		programs, err := s.programRepo.GetByRegionAndAge(gctx, nil, *user.Region, *user.Age)
		if err != nil {
			return err
		}
		byRegionAge = programs
		return nil
	})

	g.Go(func() error {
		for _, keyword := range profile.Keywords {
			programs, err := s.programRepo.GetByEmotionKeywordContaining(gctx, nil, keyword)
			if err != nil {
				return err
			}
			byKeyword = append(byKeyword, programs...)
		}
		return nil
	})

	g.Go(func() error {
		for _, category := range profile.RecommendedCategories {
			programs, err := s.programRepo.GetByCategory(gctx, nil, category)
			if err != nil {
				return err
			}
			byCategory = append(byCategory, programs...)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var candidates []*types.WelfareProgram
	seen := map[uuid.UUID]bool{}
	for _, programs := range [][]*types.WelfareProgram{byRegionAge, byKeyword, byCategory} {
		for _, program := range programs {
			if seen[program.ID] {
				continue
			}
			seen[program.ID] = true
			candidates = append(candidates, program)
		}
	}
	return candidates, nil
}

// findRecommendedPrograms aggregates, filters by the relevance
// threshold, sorts by descending score (stable, so equal scores keep
// catalog order) and truncates to the result cap.
func (s *welfareRecommendationService) findRecommendedPrograms(ctx context.Context, user *types.User, profile *types.EmotionProfile) ([]*types.WelfareProgram, error) {
	candidates, err := s.findCandidates(ctx, user, profile)
	if err != nil {
		return nil, err
	}

	var ranked []*types.WelfareProgram
	for _, program := range candidates {
		if s.calculateRelevanceScore(program, user, profile) > relevanceThreshold {
			ranked = append(ranked, program)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return s.calculateRelevanceScore(ranked[i], user, profile) > s.calculateRelevanceScore(ranked[j], user, profile)
	})

	if len(ranked) > maxRecommendations {
		ranked = ranked[:maxRecommendations]
	}
	return ranked, nil
}

// ---- relevance scoring ----

// calculateRelevanceScore is the additive weighted model. The weight
// regime switches on whether the user's personality trait is known;
// the factors are additive bonuses clamped to 1.0, not a normalized
// distribution, and the threshold and ranking are tuned against these
// exact constants.
func (s *welfareRecommendationService) calculateRelevanceScore(program *types.WelfareProgram, user *types.User, profile *types.EmotionProfile) float64 {
	score := 0.0

	if user.Personality != nil {
		score += regionFactor(program, user, 0.25)
		score += ageFactor(program, user, 0.15)
		score += keywordOverlapFactor(program, profile, 0.25)
		score += categoryFactor(program, profile, 0.15)
		score += traitAffinityBonus(program, *user.Personality)
	} else {
		score += regionFactor(program, user, 0.30)
		score += ageFactor(program, user, 0.20)
		score += keywordOverlapFactor(program, profile, 0.30)
		score += categoryFactor(program, profile, 0.20)
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func regionFactor(program *types.WelfareProgram, user *types.User, weight float64) float64 {
	if program.TargetRegion != nil && user.Region != nil && *program.TargetRegion == *user.Region {
		return weight
	}
	return 0
}

// ageFactor contributes the full weight when the program's age range
// contains the user's age; an unknown user age contributes nothing.
func ageFactor(program *types.WelfareProgram, user *types.User, weight float64) float64 {
	if user.Age == nil {
		return 0
	}
	if program.TargetAgeMin != nil && *program.TargetAgeMin > *user.Age {
		return 0
	}
	if program.TargetAgeMax != nil && *program.TargetAgeMax < *user.Age {
		return 0
	}
	return weight
}

func keywordOverlapFactor(program *types.WelfareProgram, profile *types.EmotionProfile, weight float64) float64 {
	if program.EmotionKeywords == "" {
		return 0
	}
	matching := 0
	for _, keyword := range profile.Keywords {
		if strings.Contains(program.EmotionKeywords, keyword) {
			matching++
		}
	}
	total := len(profile.Keywords)
	if total < 1 {
		total = 1
	}
	return float64(matching) * weight / float64(total)
}

func categoryFactor(program *types.WelfareProgram, profile *types.EmotionProfile, weight float64) float64 {
	if profile.RecommendsCategory(program.Category) {
		return weight
	}
	return 0
}

func traitAffinityBonus(program *types.WelfareProgram, trait types.PersonalityType) float64 {
	content := strings.ToLower(program.Title + " " + program.Description + " " + program.EmotionKeywords)
	for _, keyword := range trait.ContentKeywords() {
		if strings.Contains(content, keyword) {
			return traitContentBonus
		}
	}
	return 0
}

// ---- persistence ----

// saveRecommendations persists the ranked programs in order. Scores
// are recomputed at write time so the persisted row always matches the
// scorer's output. Every row gets a template rationale before any
// enrichment is even scheduled.
func (s *welfareRecommendationService) saveRecommendations(
	ctx context.Context,
	user *types.User,
	programs []*types.WelfareProgram,
	profile *types.EmotionProfile,
	emotion types.EmotionKeyword,
	activity types.WishActivity,
	enrichReason bool,
) ([]*types.WelfareRecommendation, error) {
	if len(programs) == 0 {
		return []*types.WelfareRecommendation{}, nil
	}

	recs := make([]*types.WelfareRecommendation, 0, len(programs))
	for _, program := range programs {
		recs = append(recs, &types.WelfareRecommendation{
			UserID:           user.ID,
			WelfareProgramID: program.ID,
			Score:            s.calculateRelevanceScore(program, user, profile),
			AnalysisKeywords: strings.Join(profile.Keywords, ", "),
			EmotionAnalysis:  profile.AnalysisText,
			Reason:           buildTemplateReason(program, emotion, activity),
		})
	}

	saved, err := s.recRepo.Create(ctx, nil, recs)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, user.ID)
	}

	if enrichReason && emotion != "" && activity != "" {
		for _, rec := range saved {
			s.scheduleReasonEnrichment(rec.ID, emotion, activity, user.Personality, programByID(programs, rec.WelfareProgramID))
		}
	}

	return saved, nil
}

func programByID(programs []*types.WelfareProgram, id uuid.UUID) *types.WelfareProgram {
	for _, p := range programs {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// scheduleReasonEnrichment submits the best-effort rationale upgrade.
// At most one attempt is ever scheduled per row; failure leaves the
// template rationale in place and is not surfaced to the caller.
func (s *welfareRecommendationService) scheduleReasonEnrichment(recID uuid.UUID, emotion types.EmotionKeyword, activity types.WishActivity, trait *types.PersonalityType, program *types.WelfareProgram) {
	if program == nil {
		return
	}
	err := s.pool.Submit("reason_enrichment", func(ctx context.Context) error {
		prompt := buildReasonPrompt(emotion, activity, trait, program)
		generated, err := s.openai.GenerateText(ctx, prompt)
		if err != nil {
			s.log.Warn("Reason enrichment failed, keeping template reason", "recommendation_id", recID, "error", err)
			return nil
		}
		if err := s.recRepo.UpdateReason(ctx, nil, recID, generated); err != nil {
			s.log.Warn("Reason update failed", "recommendation_id", recID, "error", err)
		}
		return nil
	})
	if err != nil {
		s.log.Warn("Could not schedule reason enrichment", "recommendation_id", recID, "error", err)
	}
}

// ---- read side ----

func (s *welfareRecommendationService) GetUserRecommendations(ctx context.Context, userID uuid.UUID) ([]WelfareRecommendationResponse, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, userID); ok {
			return cached, nil
		}
	}

	recs, err := s.recRepo.GetByUser(ctx, nil, userID)
	if err != nil {
		return nil, err
	}

	out := make([]WelfareRecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toRecommendationResponse(rec, rec.WelfareProgram))
	}

	if s.cache != nil {
		s.cache.Set(ctx, userID, out)
	}
	return out, nil
}

func (s *welfareRecommendationService) GetUnreadRecommendations(ctx context.Context, userID uuid.UUID) ([]WelfareRecommendationResponse, error) {
	recs, err := s.recRepo.GetUnclickedByUser(ctx, nil, userID)
	if err != nil {
		return nil, err
	}

	out := make([]WelfareRecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toRecommendationResponse(rec, rec.WelfareProgram))
	}
	return out, nil
}

func (s *welfareRecommendationService) GetRecommendationDetail(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*WelfareRecommendationResponse, error) {
	rec, err := s.recRepo.GetByIDAndUser(ctx, nil, id, userID)
	if err != nil {
		return nil, err
	}
	resp := toRecommendationResponse(rec, rec.WelfareProgram)
	return &resp, nil
}

func toRecommendationResponse(rec *types.WelfareRecommendation, program *types.WelfareProgram) WelfareRecommendationResponse {
	resp := WelfareRecommendationResponse{
		ID:        rec.ID,
		Score:     rec.Score,
		Reason:    rec.Reason,
		IsClicked: rec.IsClicked,
		IsApplied: rec.IsApplied,
		CreatedAt: rec.CreatedAt,
	}
	if program != nil {
		resp.Title = program.Title
		resp.Description = program.Description
		resp.Organization = program.Organization
		resp.Category = program.Category
		if program.TargetRegion != nil {
			resp.TargetRegion = program.TargetRegion.DisplayName()
		}
		resp.ApplicationURL = program.ApplicationURL
		resp.ContactNumber = program.ContactNumber
		resp.Target = program.TargetDescription
		resp.Location = program.Location
		resp.Schedule = program.Schedule
	}
	return resp
}
