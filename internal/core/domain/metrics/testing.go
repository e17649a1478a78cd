package metrics

import "sync"

type FakeRecorder struct {
	Emails    map[string]int
	Passwords map[string]int
	lock      sync.Mutex
}

func NewFakeRecorder() *FakeRecorder {
	return &FakeRecorder{Emails: map[string]int{}, Passwords: map[string]int{}}
}

func (r *FakeRecorder) EmailSent(kind string, outcome string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Emails[kind+"/"+outcome]++
}

func (r *FakeRecorder) PasswordUpdated(path string, outcome string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Passwords[path+"/"+outcome]++
}
