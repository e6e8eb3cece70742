// Package public is the read-only projection served to anonymous visitors.
// Every read falls back to placeholder content on failure so the public page
// never renders empty or broken.
package public

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/prateek9389/prateekportfolio/adapters/persistence"
	"github.com/prateek9389/prateekportfolio/internal/domain/experience"
	"github.com/prateek9389/prateekportfolio/internal/domain/project"
	"github.com/prateek9389/prateekportfolio/internal/domain/settings"
	"github.com/prateek9389/prateekportfolio/internal/domain/skill"
	"github.com/prateek9389/prateekportfolio/internal/store"
	"github.com/prateek9389/prateekportfolio/pkg/apperror"
	"github.com/prateek9389/prateekportfolio/pkg/logger"
)

type PublicContentUseCase struct {
	store  store.Store
	cache  *persistence.ContentCache
	logger logger.Logger
}

func NewPublicContentUseCase(s store.Store, c *persistence.ContentCache, log logger.Logger) *PublicContentUseCase {
	return &PublicContentUseCase{store: s, cache: c, logger: log}
}

func cacheLookup[T any](uc *PublicContentUseCase, ctx context.Context, key string) (*T, bool) {
	if uc.cache == nil {
		return nil, false
	}
	payload, ok := uc.cache.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var out T
	if err := json.Unmarshal(payload, &out); err != nil {
		uc.logger.Warn("Dropping malformed cache entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &out, true
}

func (uc *PublicContentUseCase) cacheStore(ctx context.Context, key string, v any) {
	if uc.cache == nil {
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	uc.cache.Set(ctx, key, payload)
}

// ExecuteProfile never fails: a missing document or a store error falls back
// to the built-in placeholder profile.
func (uc *PublicContentUseCase) ExecuteProfile(ctx context.Context) *settings.Profile {
	key := persistence.PublicCacheKey(store.CollectionSettings)
	if cached, ok := cacheLookup[settings.Profile](uc, ctx, key); ok {
		return cached
	}

	doc, err := uc.store.GetDocument(ctx, store.CollectionSettings, store.SingletonProfile)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			uc.logger.Warn("Public profile read failed, serving placeholder", zap.Error(err))
		}
		return settings.DefaultProfile()
	}

	p := settings.ProfileFromDocument(*doc)
	uc.cacheStore(ctx, key, p)
	return p
}

func (uc *PublicContentUseCase) ExecuteProjects(ctx context.Context) []*project.Project {
	key := persistence.PublicCacheKey(store.CollectionProjects)
	if cached, ok := cacheLookup[[]*project.Project](uc, ctx, key); ok {
		return *cached
	}

	docs, err := uc.store.ListCollection(ctx, store.CollectionProjects, store.Query{
		OrderBy:    "createdAt",
		Descending: true,
	})
	if err != nil {
		uc.logger.Warn("Public projects read failed, serving placeholders", zap.Error(err))
		return defaultProjects()
	}
	if len(docs) == 0 {
		return defaultProjects()
	}

	projects := make([]*project.Project, len(docs))
	for i, doc := range docs {
		projects[i] = project.FromDocument(doc)
	}
	uc.cacheStore(ctx, key, projects)
	return projects
}

type PublicSkill struct {
	Name string `json:"name"`
	// Level is clamped to [0,100] on the way out; the store does not
	// enforce the range and other writers are not trusted.
	Level int `json:"level"`
}

type SkillGroup struct {
	Category string        `json:"category"`
	Skills   []PublicSkill `json:"skills"`
}

func (uc *PublicContentUseCase) ExecuteSkills(ctx context.Context) []SkillGroup {
	key := persistence.PublicCacheKey(store.CollectionSkills)
	if cached, ok := cacheLookup[[]SkillGroup](uc, ctx, key); ok {
		return *cached
	}

	docs, err := uc.store.ListCollection(ctx, store.CollectionSkills, store.Query{OrderBy: "category"})
	if err != nil {
		uc.logger.Warn("Public skills read failed, serving placeholders", zap.Error(err))
		return defaultSkillGroups()
	}
	if len(docs) == 0 {
		return defaultSkillGroups()
	}

	grouped := make(map[string]int)
	groups := make([]SkillGroup, 0)
	for _, doc := range docs {
		s := skill.FromDocument(doc)
		idx, ok := grouped[s.Category]
		if !ok {
			idx = len(groups)
			grouped[s.Category] = idx
			groups = append(groups, SkillGroup{Category: s.Category})
		}
		groups[idx].Skills = append(groups[idx].Skills, PublicSkill{
			Name:  s.Name,
			Level: skill.DisplayLevel(s.Level),
		})
	}
	uc.cacheStore(ctx, key, groups)
	return groups
}

func (uc *PublicContentUseCase) ExecuteExperiences(ctx context.Context) []*experience.Experience {
	key := persistence.PublicCacheKey(store.CollectionExperiences)
	if cached, ok := cacheLookup[[]*experience.Experience](uc, ctx, key); ok {
		return *cached
	}

	docs, err := uc.store.ListCollection(ctx, store.CollectionExperiences, store.Query{
		OrderBy:    "createdAt",
		Descending: true,
	})
	if err != nil {
		uc.logger.Warn("Public experiences read failed, serving empty timeline", zap.Error(err))
		return []*experience.Experience{}
	}

	experiences := make([]*experience.Experience, len(docs))
	for i, doc := range docs {
		experiences[i] = experience.FromDocument(doc)
	}
	if len(experiences) > 0 {
		uc.cacheStore(ctx, key, experiences)
	}
	return experiences
}

// ExecuteSocials returns the current socials singleton; a missing document or
// a failed read hides every platform rather than erroring.
func (uc *PublicContentUseCase) ExecuteSocials(ctx context.Context) *settings.SocialProfiles {
	doc, err := uc.store.GetDocument(ctx, store.CollectionSettings, store.SingletonSocials)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			uc.logger.Warn("Public socials read failed, hiding links", zap.Error(err))
		}
		return &settings.SocialProfiles{}
	}
	return settings.SocialsFromDocument(*doc)
}

func defaultProjects() []*project.Project {
	return []*project.Project{
		{
			Title:       "Neural Dashboard",
			Description: "Real-time analytics dashboard with live data pipelines.",
			Tags:        []string{"React", "Go", "PostgreSQL"},
		},
		{
			Title:       "Orbit Commerce",
			Description: "Headless storefront with an edge-cached product catalog.",
			Tags:        []string{"Next.js", "Redis", "Stripe"},
		},
	}
}

func defaultSkillGroups() []SkillGroup {
	return []SkillGroup{
		{Category: "Frontend", Skills: []PublicSkill{
			{Name: "React / Next.js", Level: 95},
			{Name: "Tailwind CSS", Level: 98},
			{Name: "TypeScript", Level: 85},
		}},
		{Category: "Backend", Skills: []PublicSkill{
			{Name: "Node.js / Express", Level: 88},
			{Name: "PostgreSQL", Level: 80},
			{Name: "Python", Level: 75},
		}},
		{Category: "Tools & Tech", Skills: []PublicSkill{
			{Name: "Git / GitHub", Level: 95},
			{Name: "Docker", Level: 70},
			{Name: "AWS", Level: 65},
		}},
	}
}
