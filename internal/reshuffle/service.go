package reshuffle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"

	"github.com/saulo-duarte/academy-functions/internal/config"
	"github.com/saulo-duarte/academy-functions/internal/quiz"
	"github.com/saulo-duarte/academy-functions/internal/records"
)

var ErrStorageUnavailable = errors.New("storage unavailable")

type Service interface {
	Run(ctx context.Context) (*Summary, error)
}

type service struct {
	repo       records.Repository
	categories []records.Category
	workers    int
	shuffle    func([]quiz.Question) []quiz.Question
}

type Option func(*service)

// WithWorkers bounds how many records are rewritten concurrently. One worker
// keeps the pass strictly sequential.
func WithWorkers(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.workers = n
		}
	}
}

func WithCategories(c ...records.Category) Option {
	return func(s *service) {
		s.categories = c
	}
}

func NewService(repo records.Repository, opts ...Option) Service {
	s := &service{
		repo:       repo,
		categories: records.AllCategories,
		workers:    1,
		shuffle:    quiz.ShuffleAll,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Run(ctx context.Context) (*Summary, error) {
	log := config.WithContext(ctx)

	if err := s.repo.Ping(ctx); err != nil {
		log.WithError(err).Error("Cannot reach storage, aborting quiz shuffle")
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	summary := newSummary()
	for _, c := range s.categories {
		recs, err := s.repo.ListWithQuizzes(ctx, c)
		if err != nil {
			log.WithError(err).WithField("category", c).Error("Failed to read records")
			return nil, fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, c, err)
		}

		st := s.rewriteCategory(ctx, log, c, recs)
		log.WithFields(logrus.Fields{
			"category":  c,
			"total":     st.Total,
			"updated":   st.Updated,
			"failed":    st.Failed,
			"questions": st.Questions,
		}).Info("Category shuffled")
		summary.add(c, st)
	}

	return summary, nil
}

func (s *service) rewriteCategory(ctx context.Context, log logrus.FieldLogger, c records.Category, recs []records.Record) CategoryStats {
	var (
		mu sync.Mutex
		st = CategoryStats{Total: len(recs)}
	)

	g := new(errgroup.Group)
	g.SetLimit(s.workers)

	for _, rec := range recs {
		g.Go(func() error {
			written, attempted, err := s.rewriteRecord(ctx, c, rec)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case errors.Is(err, quiz.ErrNotAnArray):
				log.WithFields(logrus.Fields{
					"category":  c,
					"record_id": rec.ID,
				}).Warn("quiz_questions is not a list, leaving record untouched")
			case err != nil:
				st.Failed++
				log.WithError(err).WithFields(logrus.Fields{
					"category":  c,
					"record_id": rec.ID,
				}).Warn("Skipping record")
			case attempted:
				st.Updated++
				st.Questions += written
			}
			return nil
		})
	}
	_ = g.Wait()

	return st
}

// rewriteRecord shuffles one record. attempted is false when the record had
// nothing to shuffle.
func (s *service) rewriteRecord(ctx context.Context, c records.Category, rec records.Record) (written int, attempted bool, err error) {
	if isEmptyList(rec.QuizQuestions) {
		return 0, false, nil
	}

	questions, err := quiz.DecodeQuestions(rec.QuizQuestions)
	if err != nil {
		return 0, false, err
	}

	payload, err := json.Marshal(s.shuffle(questions))
	if err != nil {
		return 0, false, fmt.Errorf("encode quiz questions: %w", err)
	}

	if err := s.repo.ReplaceQuizQuestions(ctx, c, rec.ID, datatypes.JSON(payload)); err != nil {
		return 0, false, fmt.Errorf("write quiz questions: %w", err)
	}
	return len(questions), true, nil
}

func isEmptyList(raw datatypes.JSON) bool {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		// non-arrays are reported by DecodeQuestions
		return len(raw) == 0 || string(raw) == "null"
	}
	return len(items) == 0
}
