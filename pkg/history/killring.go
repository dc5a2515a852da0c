package history

// KillRing keeps the last few cut or copied strings, newest first. It backs
// the editor's local clipboard register.
type KillRing struct {
	entries []string
	pos     int
}

const killRingMax = 10

// Push stores s as the newest entry and makes it current. Empty strings are
// ignored.
func (k *KillRing) Push(s string) {
	if s == "" {
		return
	}
	k.entries = append([]string{s}, k.entries...)
	if len(k.entries) > killRingMax {
		k.entries = k.entries[:killRingMax]
	}
	k.pos = 0
}

// Rotate makes the next older entry current, wrapping to the newest.
func (k *KillRing) Rotate() bool {
	if len(k.entries) <= 1 {
		return false
	}
	k.pos = (k.pos + 1) % len(k.entries)
	return true
}

// Current returns the current entry, or "" when the ring is empty.
func (k *KillRing) Current() string {
	if len(k.entries) == 0 {
		return ""
	}
	return k.entries[k.pos]
}

func (k *KillRing) Len() int { return len(k.entries) }
