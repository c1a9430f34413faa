package quests

// Salts keep the daily and weekly draws independent for the same date
const (
	saltDaily  = "daily"
	saltWeekly = "weekly"
)

// seededRand is a 31-bit linear congruential generator seeded from a
// string hash. The constants are fixed so a date always yields the same
// sequence.
type seededRand struct {
	state uint32
}

func newSeededRand(key, salt string) *seededRand {
	var h uint32
	s := key + salt
	for i := 0; i < len(s); i++ {
		h = h*31 + uint32(s[i])
	}
	return &seededRand{state: h & 0x7fffffff}
}

func (r *seededRand) next() uint32 {
	r.state = (r.state*1103515245 + 12345) & 0x7fffffff
	return r.state
}

// intn returns a value in [0, n)
func (r *seededRand) intn(n int) int {
	return int(uint64(r.next()) * uint64(n) >> 31)
}
