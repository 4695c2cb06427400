package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cybermcq/mcq-backend/internal/cache"
	"github.com/cybermcq/mcq-backend/internal/model"
)

func newQuizService(t *testing.T) (*QuizService, *fakeQuestionStore) {
	t.Helper()
	questions := newFakeQuestionStore()
	quizCache := cache.NewQuizCache(nil, 0, zerolog.Nop())
	return NewQuizService(questions, quizCache, zerolog.Nop()), questions
}

func seedBank(store *fakeQuestionStore, subjectID string, n int) {
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("%s-q%03d", subjectID, i)
		store.questions[id] = model.Question{
			QuestionID:  id,
			Question:    "question " + id,
			Options:     []string{"a", "b", "c", "d"},
			AnswerIndex: i % 4,
			SubjectID:   subjectID,
		}
	}
}

func TestQuizComposeCount(t *testing.T) {
	tests := []struct {
		name  string
		bank  int
		count int
		want  int
	}{
		{"exact", 20, 10, 10},
		{"bank smaller than count", 3, 10, 3},
		{"count below minimum clamps to one", 20, 0, 1},
		{"negative count clamps to one", 20, -7, 1},
		{"count above maximum clamps to fifty", 80, 200, 50},
		{"empty bank", 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newQuizService(t)
			seedBank(store, "s1", tt.bank)

			quiz, err := svc.Compose(context.Background(), tt.count, "")
			if err != nil {
				t.Fatalf("Compose() error = %v", err)
			}
			if len(quiz.Questions) != tt.want {
				t.Errorf("len(Questions) = %d, want %d", len(quiz.Questions), tt.want)
			}
			if quiz.Total != tt.want {
				t.Errorf("Total = %d, want %d", quiz.Total, tt.want)
			}
		})
	}
}

func TestQuizComposeSubjectFilter(t *testing.T) {
	svc, store := newQuizService(t)
	seedBank(store, "s1", 5)
	seedBank(store, "s2", 5)

	quiz, err := svc.Compose(context.Background(), 50, "s1")
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if len(quiz.Questions) != 5 {
		t.Fatalf("len(Questions) = %d, want 5", len(quiz.Questions))
	}
	for _, q := range quiz.Questions {
		if q.QuestionID[:2] != "s1" {
			t.Errorf("question %q leaked from another subject", q.QuestionID)
		}
	}
}

func TestQuizComposeNoDuplicates(t *testing.T) {
	svc, store := newQuizService(t)
	seedBank(store, "s1", 30)

	quiz, err := svc.Compose(context.Background(), 20, "")
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	seen := map[string]bool{}
	for _, q := range quiz.Questions {
		if seen[q.QuestionID] {
			t.Errorf("question %q sampled twice", q.QuestionID)
		}
		seen[q.QuestionID] = true
	}
}

func TestShuffleOptionsRemapsAnswer(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	original := model.QuizQuestion{
		QuestionID:  "q1",
		Question:    "pick b",
		Options:     []string{"a", "b", "c", "d"},
		AnswerIndex: 1,
	}

	for i := 0; i < 100; i++ {
		got := shuffleOptions(original, rng)

		if got.Options[got.AnswerIndex] != "b" {
			t.Fatalf("answer remap broken: options[%d] = %q, want b", got.AnswerIndex, got.Options[got.AnswerIndex])
		}

		sorted := append([]string(nil), got.Options...)
		sort.Strings(sorted)
		if fmt.Sprint(sorted) != fmt.Sprint([]string{"a", "b", "c", "d"}) {
			t.Fatalf("options multiset changed: %v", got.Options)
		}
	}
}

func TestShuffleOptionsLeavesInputUntouched(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	original := model.QuizQuestion{
		Options:     []string{"a", "b", "c", "d"},
		AnswerIndex: 2,
	}

	for i := 0; i < 50; i++ {
		shuffleOptions(original, rng)
	}

	if fmt.Sprint(original.Options) != fmt.Sprint([]string{"a", "b", "c", "d"}) {
		t.Errorf("input options mutated: %v", original.Options)
	}
	if original.AnswerIndex != 2 {
		t.Errorf("input answer index mutated: %d", original.AnswerIndex)
	}
}

func TestSampleQuestionsLeavesPoolUntouched(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	pool := make([]model.QuizQuestion, 10)
	for i := range pool {
		pool[i] = model.QuizQuestion{QuestionID: fmt.Sprintf("q%d", i)}
	}

	for i := 0; i < 50; i++ {
		sampleQuestions(pool, 4, rng)
	}

	for i, q := range pool {
		if q.QuestionID != fmt.Sprintf("q%d", i) {
			t.Fatalf("pool mutated at %d: %q", i, q.QuestionID)
		}
	}
}

func TestSampleQuestionsSmallPoolKeepsOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	pool := []model.QuizQuestion{
		{QuestionID: "q1"}, {QuestionID: "q2"},
	}

	got := sampleQuestions(pool, 5, rng)
	if len(got) != 2 || got[0].QuestionID != "q1" || got[1].QuestionID != "q2" {
		t.Errorf("small pool should come back whole in order, got %v", got)
	}
}
