//go:build cucumber

package job

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/sirupsen/logrus/hooks/test"

	"questioncron/internal/question"
	"questioncron/internal/testutil"
)

// TestCronjobScenarios runs the hourly cronjob feature scenarios.
func TestCronjobScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "spec", "features", "hourly-cronjob", "run.feature")
	suite := godog.TestSuite{
		Name:                "hourly-cronjob",
		ScenarioInitializer: InitializeCronjobScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeCronjobScenario wires steps for cronjob scenarios.
func InitializeCronjobScenario(ctx *godog.ScenarioContext) {
	state := &cronjobScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		return ctx, os.RemoveAll(state.dir)
	})

	ctx.Step(`^a questions file containing:$`, state.givenQuestionsFile)
	ctx.Step(`^no questions file$`, state.givenNoQuestionsFile)
	ctx.Step(`^the cronjob runs$`, state.whenCronjobRuns)
	ctx.Step(`^the run succeeds$`, state.thenRunSucceeds)
	ctx.Step(`^the run fails as (malformed|unreadable)$`, state.thenRunFails)
	ctx.Step(`^(\d+) lines are logged$`, state.thenLineCount)
	ctx.Step(`^line (\d+) is the start banner$`, state.thenStartBanner)
	ctx.Step(`^line (\d+) is "([^"]*)"$`, state.thenLineIs)
	ctx.Step(`^the last line reports a numeric duration$`, state.thenNumericDuration)
	ctx.Step(`^no question lines are logged$`, state.thenNoQuestionLines)
}

type cronjobScenarioState struct {
	dir  string
	path string
	hook *test.Hook
	err  error
}

// reset clears scenario state and allocates a fresh directory.
func (s *cronjobScenarioState) reset() error {
	dir, err := os.MkdirTemp("", "questioncron-*")
	if err != nil {
		return err
	}
	*s = cronjobScenarioState{dir: dir, path: filepath.Join(dir, "questions.json")}
	return nil
}

func (s *cronjobScenarioState) givenQuestionsFile(body *godog.DocString) error {
	return os.WriteFile(s.path, []byte(body.Content), 0o644)
}

func (s *cronjobScenarioState) givenNoQuestionsFile() error {
	s.path = filepath.Join(s.dir, "missing.json")
	return nil
}

func (s *cronjobScenarioState) whenCronjobRuns() error {
	logger, hook := testutil.NewLogger()
	s.hook = hook
	_, s.err = New(Config{QuestionsPath: s.path, Logger: logger}).Run(context.Background())
	return nil
}

func (s *cronjobScenarioState) thenRunSucceeds() error {
	if s.err != nil {
		return fmt.Errorf("expected success, got %v", s.err)
	}
	return nil
}

func (s *cronjobScenarioState) thenRunFails(kind string) error {
	want := question.ErrMalformed
	if kind == "unreadable" {
		want = question.ErrUnreadable
	}
	if !errors.Is(s.err, want) {
		return fmt.Errorf("expected %v, got %v", want, s.err)
	}
	return nil
}

func (s *cronjobScenarioState) messages() []string {
	return testutil.Messages(s.hook)
}

func (s *cronjobScenarioState) thenLineCount(count int) error {
	if got := len(s.messages()); got != count {
		return fmt.Errorf("expected %d lines, got %d: %q", count, got, s.messages())
	}
	return nil
}

func (s *cronjobScenarioState) thenStartBanner(number int) error {
	return s.thenLineIs(number, startBanner)
}

func (s *cronjobScenarioState) thenLineIs(number int, want string) error {
	messages := s.messages()
	if number < 1 || number > len(messages) {
		return fmt.Errorf("line %d out of range (%d lines)", number, len(messages))
	}
	if got := messages[number-1]; got != want {
		return fmt.Errorf("line %d: expected %q, got %q", number, want, got)
	}
	return nil
}

func (s *cronjobScenarioState) thenNumericDuration() error {
	messages := s.messages()
	if len(messages) == 0 {
		return fmt.Errorf("no lines logged")
	}
	last := messages[len(messages)-1]
	fields := strings.Fields(last)
	if len(fields) < 6 || !strings.Contains(last, "Finished running cronjob") {
		return fmt.Errorf("unexpected completion line %q", last)
	}
	seconds, err := strconv.ParseFloat(fields[4], 64)
	if err != nil || seconds < 0 {
		return fmt.Errorf("expected non-negative duration in %q", last)
	}
	return nil
}

func (s *cronjobScenarioState) thenNoQuestionLines() error {
	messages := s.messages()
	if len(messages) != 1 || messages[0] != startBanner {
		return fmt.Errorf("expected only the start banner, got %q", messages)
	}
	return nil
}
