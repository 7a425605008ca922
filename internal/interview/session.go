package interview

import "sync"

// DefaultSessionKey is used when a request carries no session id, matching
// the original shared-session behavior.
const DefaultSessionKey = "default"

// defaultMaxHistory bounds per-session question history. Oldest entries are
// evicted, so deduplication only considers the retained window.
const defaultMaxHistory = 200

// SessionStore maps session keys to question history. Sessions are created
// lazily and live for the process lifetime.
type SessionStore struct {
	mu         sync.Mutex
	sessions   map[string]*session
	maxHistory int
}

type session struct {
	// mu serializes the whole generate/check/append cycle for one key,
	// so duplicate detection cannot race between concurrent requests.
	mu        sync.Mutex
	questions []string
}

func NewSessionStore(maxHistory int) *SessionStore {
	if maxHistory <= 0 {
		maxHistory = defaultMaxHistory
	}
	return &SessionStore{
		sessions:   make(map[string]*session),
		maxHistory: maxHistory,
	}
}

func (st *SessionStore) get(key string) *session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[key]
	if !ok {
		s = &session{}
		st.sessions[key] = s
	}
	return s
}

// History returns a snapshot of the questions recorded for a session key.
func (st *SessionStore) History(key string) []string {
	s := st.get(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]string, len(s.questions))
	copy(snapshot, s.questions)
	return snapshot
}

// contains must be called with s.mu held.
func (s *session) contains(question string) bool {
	for _, q := range s.questions {
		if q == question {
			return true
		}
	}
	return false
}

// record must be called with s.mu held.
func (s *session) record(question string, maxHistory int) {
	s.questions = append(s.questions, question)
	if len(s.questions) > maxHistory {
		s.questions = s.questions[len(s.questions)-maxHistory:]
	}
}
