package testutil

import (
	"sync"
)

// Question is a prompt received by FakeIO
type Question struct {
	Text    string
	Default bool
}

// FakeIO implements types.IO with scripted answers
type FakeIO struct {
	mu sync.Mutex

	// Answers are consumed in order. When exhausted, the prompt default is used.
	Answers []bool

	// Err, when set, is returned by every Confirm call
	Err error

	Questions []Question
	Messages  []string
	Errors    []string
}

// NewFakeIO creates a FakeIO answering with the given values
func NewFakeIO(answers ...bool) *FakeIO {
	return &FakeIO{Answers: answers}
}

// Confirm records the question and returns the next scripted answer
func (f *FakeIO) Confirm(question string, defaultAnswer bool) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Questions = append(f.Questions, Question{Text: question, Default: defaultAnswer})
	if f.Err != nil {
		return false, f.Err
	}
	if len(f.Answers) == 0 {
		return defaultAnswer, nil
	}
	answer := f.Answers[0]
	f.Answers = f.Answers[1:]
	return answer, nil
}

// Write records a message
func (f *FakeIO) Write(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Messages = append(f.Messages, message)
}

// WriteError records an error message
func (f *FakeIO) WriteError(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Errors = append(f.Errors, message)
}

// Asked returns the number of prompts shown so far
func (f *FakeIO) Asked() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Questions)
}
