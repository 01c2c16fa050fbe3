package core

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// QTable maps state hashes to per-action utility estimates. Missing
// entries read as 0. Reads never create entries, only Set writes to
// the table.
type QTable struct {
	table map[string]map[string]float64
}

func NewQTable() *QTable {
	return &QTable{
		table: make(map[string]map[string]float64),
	}
}

// Get returns the recorded utility of the pair, 0 if it was never
// written.
func (q *QTable) Get(state, action string) float64 {
	return q.table[state][action]
}

func (q *QTable) Set(state, action string, val float64) {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	q.table[state][action] = val
}

// Values returns the recorded action utilities for a state. The
// returned map may be nil and must not be mutated.
func (q *QTable) Values(state string) map[string]float64 {
	return q.table[state]
}

// Max returns the maximum recorded utility at a state. A state with
// no recorded actions behaves as if every action there has utility 0.
func (q *QTable) Max(state string) float64 {
	row, ok := q.table[state]
	if !ok || len(row) == 0 {
		return 0
	}
	first := true
	maxVal := float64(0)
	for _, val := range row {
		if first || val > maxVal {
			maxVal = val
			first = false
		}
	}
	return maxVal
}

func (q *QTable) HasState(state string) bool {
	_, ok := q.table[state]
	return ok
}

// Size returns the number of states with recorded utilities
func (q *QTable) Size() int {
	return len(q.table)
}

func (q *QTable) States() []string {
	out := make([]string, 0, len(q.table))
	for state := range q.table {
		out = append(out, state)
	}
	return out
}

// Record writes the table to a jsonl file, one state per line
func (q *QTable) Record(path string) error {
	bs := new(bytes.Buffer)

	for state, entries := range q.table {
		stateJ := make(map[string]interface{})
		stateJ["state"] = state
		stateJ["entries"] = entries

		stateBS, err := json.Marshal(stateJ)
		if err == nil {
			bs.Write(stateBS)
			bs.Write([]byte("\n"))
		}
	}

	return os.WriteFile(path, bs.Bytes(), 0644)
}

// Load reads a table previously written with Record
func (q *QTable) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error reading file: %s", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		in := make(map[string]interface{})
		if err := json.Unmarshal(scanner.Bytes(), &in); err != nil {
			return fmt.Errorf("error reading file contents: %s", err)
		}
		state := in["state"].(string)
		entries := make(map[string]float64)
		for k, v := range in["entries"].(map[string]interface{}) {
			entries[k] = v.(float64)
		}
		q.table[state] = entries
	}
	return scanner.Err()
}

// Counter tracks how often each state-action pair has been left.
// Counts default to 0 and are never decremented.
type Counter struct {
	counts map[string]map[string]int
}

func NewCounter() *Counter {
	return &Counter{
		counts: make(map[string]map[string]int),
	}
}

func (c *Counter) Get(state, action string) int {
	return c.counts[state][action]
}

func (c *Counter) Incr(state, action string) {
	if _, ok := c.counts[state]; !ok {
		c.counts[state] = make(map[string]int)
	}
	c.counts[state][action] += 1
}

// Row returns the per-action counts for a state. The returned map
// may be nil and must not be mutated.
func (c *Counter) Row(state string) map[string]int {
	return c.counts[state]
}
