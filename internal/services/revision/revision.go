// Package services содержит бизнес-логику генерации и хранения ревизий,
// включая кеширование списков.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/revision-generator/internal/lib/prompts"
	"github.com/magabrotheeeer/revision-generator/internal/models"
)

// ErrProviderUnconfigured означает отсутствие ключа LLM-провайдера.
// Это ошибка конфигурации процесса, а не сбой конкретной генерации.
var ErrProviderUnconfigured = errors.New("llm provider api key is not configured")

// ErrGenerationFailed означает сбой на стороне провайдера: сеть, авторизация,
// некорректный ответ. Текст исходной ошибки сохраняется при обёртывании.
var ErrGenerationFailed = errors.New("generation failed")

// ErrRevisionNotFound возвращается при удалении несуществующей или чужой
// ревизии; случаи намеренно неразличимы.
var ErrRevisionNotFound = errors.New("revision not found")

// Не более 100 последних ревизий на пользователя в выдаче списка.
const maxListRevisions = 100

const listCacheTTL = time.Hour

// RevisionRepository определяет методы для работы с ревизиями в хранилище.
type RevisionRepository interface {
	// CreateRevision сохраняет новую ревизию.
	CreateRevision(ctx context.Context, revision models.Revision) error
	// ListRevisions возвращает ревизии пользователя, новые первыми, не более limit.
	ListRevisions(ctx context.Context, userUID string, limit int) ([]*models.Revision, error)
	// RemoveRevision удаляет ревизию по ID и владельцу, возвращает число удалённых строк.
	RemoveRevision(ctx context.Context, id, userUID string) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// Provider описывает клиента LLM-провайдера. Ровно один запрос на вызов.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userText, imageBase64 string) (string, error)
}

// RevisionService реализует генерацию материала и CRUD сохранённых ревизий.
type RevisionService struct {
	repo               RevisionRepository
	cache              Cache
	provider           Provider
	providerKeyPresent bool
	log                *slog.Logger
}

// NewRevisionService создает новый экземпляр RevisionService.
func NewRevisionService(repo RevisionRepository, cache Cache, provider Provider, providerKeyPresent bool, log *slog.Logger) *RevisionService {
	return &RevisionService{
		repo:               repo,
		cache:              cache,
		provider:           provider,
		providerKeyPresent: providerKeyPresent,
		log:                log,
	}
}

// Generate собирает диалог из системной инструкции и пользовательского
// сообщения, выполняет один запрос к провайдеру и возвращает несохранённую
// ревизию. UserUID равен nil для анонимного вызова. Сохранение — отдельный
// явный шаг Save.
func (s *RevisionService) Generate(ctx context.Context, userUID *string, req models.DummyGenerateRequest) (*models.Revision, error) {
	if !s.providerKeyPresent {
		return nil, ErrProviderUnconfigured
	}

	systemPrompt := prompts.For(req.Subject, req.RevisionType)
	userText := "Voici le sujet/cours à réviser: " + req.Prompt
	if req.ImageBase64 != "" {
		userText += "\n\nAnalyse également l'image jointe si pertinente."
	}

	content, err := s.provider.Complete(ctx, systemPrompt, userText, req.ImageBase64)
	if err != nil {
		s.log.Error("provider call failed", slog.Any("err", err))
		return nil, fmt.Errorf("%w: %s", ErrGenerationFailed, err.Error())
	}

	revision := &models.Revision{
		ID:           uuid.NewString(),
		UserUID:      userUID,
		Subject:      req.Subject,
		RevisionType: req.RevisionType,
		Prompt:       req.Prompt,
		Content:      content,
		CreatedAt:    time.Now().UTC(),
	}
	s.log.Info("generated revision", slog.String("id", revision.ID), slog.String("revision_type", req.RevisionType))
	return revision, nil
}

// Save сохраняет ревизию за владельцем и инвалидирует кеш его списка.
func (s *RevisionService) Save(ctx context.Context, userUID string, req models.DummySaveRequest) (*models.Revision, error) {
	revision := models.Revision{
		ID:           uuid.NewString(),
		UserUID:      &userUID,
		Subject:      req.Subject,
		RevisionType: req.RevisionType,
		Prompt:       req.Prompt,
		Content:      req.Content,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateRevision(ctx, revision); err != nil {
		return nil, err
	}
	s.log.Info("saved revision", slog.String("id", revision.ID))

	cacheKey := listCacheKey(userUID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate list cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return &revision, nil
}

// List возвращает до 100 последних ревизий пользователя, новые первыми,
// используя кеш или хранилище.
func (s *RevisionService) List(ctx context.Context, userUID string) ([]*models.Revision, error) {
	cacheKey := listCacheKey(userUID)

	var cached []*models.Revision
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read list cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return cached, nil
	}

	result, err := s.repo.ListRevisions(ctx, userUID, maxListRevisions)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, listCacheTTL); err != nil {
		s.log.Warn("failed to cache list", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// Remove удаляет ревизию владельца и инвалидирует кеш его списка.
//
// Чужая и несуществующая ревизия дают одинаковый результат ErrRevisionNotFound.
func (s *RevisionService) Remove(ctx context.Context, userUID, id string) error {
	count, err := s.repo.RemoveRevision(ctx, id, userUID)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrRevisionNotFound
	}

	cacheKey := listCacheKey(userUID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate list cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return nil
}

func listCacheKey(userUID string) string {
	return "revisions:" + userUID
}
