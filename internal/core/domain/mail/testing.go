package mail

import (
	"context"
	"fmt"
	"sync"
)

type FakeSender struct {
	Sent        []Message
	ReturnError error
	VerifyError error
	lock        sync.Mutex
}

func NewFakeSender() *FakeSender {
	return &FakeSender{}
}

func (s *FakeSender) Name() string {
	return "fake"
}

func (s *FakeSender) Send(ctx context.Context, msg Message) (DeliveryID, error) {
	if s.ReturnError != nil {
		return "", s.ReturnError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, msg)
	return DeliveryID(fmt.Sprintf("<fake-%d@test>", len(s.Sent))), nil
}

func (s *FakeSender) Verify(ctx context.Context) error {
	return s.VerifyError
}

func (s *FakeSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

func (s *FakeSender) LastSent() Message {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}

type FakeRenderer struct {
	ReturnError error
}

func NewFakeRenderer() *FakeRenderer {
	return &FakeRenderer{}
}

func (r *FakeRenderer) Render(kind Kind, code Code) (string, error) {
	if r.ReturnError != nil {
		return "", r.ReturnError
	}
	return fmt.Sprintf("<p>%s:%s</p>", kind, code), nil
}
