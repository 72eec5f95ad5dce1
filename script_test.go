// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/cybrota/lanedodge/road"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietIndex() *road.Index {
	return road.NewIndex(road.WithLogger(log.New(io.Discard, "", 0)))
}

func newTestSession() (*Session, *road.Index, *bytes.Buffer) {
	idx := quietIndex()
	out := &bytes.Buffer{}
	return NewSession(idx, out, NewStyles()), idx, out
}

func TestSessionInsertAndSearch(t *testing.T) {
	s, idx, out := newTestSession()

	require.NoError(t, s.Exec("insert 83 0 special truck"))
	require.NoError(t, s.Exec("insert 300 40"))
	assert.Equal(t, 2, idx.Len())
	assert.Contains(t, out.String(), "inserted (83, 0)")

	out.Reset()
	require.NoError(t, s.Exec("search 83 0"))
	assert.Contains(t, out.String(), "found (83, 0)")
	assert.Contains(t, out.String(), "truck")

	o, ok := idx.Lookup(road.Point{X: 300, Y: 40})
	require.True(t, ok)
	assert.Equal(t, road.Normal, o.Kind)
	assert.Equal(t, "obstacle-1", o.ID)
}

func TestSessionRefusesDuplicates(t *testing.T) {
	s, idx, out := newTestSession()

	require.NoError(t, s.Exec("insert 10 10 normal first"))
	require.NoError(t, s.Exec("insert 10 10 bonus second"))

	assert.Equal(t, 1, idx.Len())
	assert.Contains(t, out.String(), "refused (10, 10)")

	o, ok := idx.Lookup(road.Point{X: 10, Y: 10})
	require.True(t, ok)
	assert.Equal(t, "first", o.ID)
}

func TestSessionDeleteAndClear(t *testing.T) {
	s, idx, out := newTestSession()

	for _, line := range []string{"add 1 1", "add 2 2", "add 3 3"} {
		require.NoError(t, s.Exec(line))
	}
	require.NoError(t, s.Exec("delete 2 2"))
	require.NoError(t, s.Exec("remove 9 9"))
	assert.Contains(t, out.String(), "deleted (2, 2)")
	assert.Contains(t, out.String(), "not found (9, 9)")
	assert.Equal(t, 2, idx.Len())

	require.NoError(t, s.Exec("check"))
	require.NoError(t, s.Exec("clear"))
	assert.True(t, idx.IsEmpty())
}

func TestSessionColumnAndTraverse(t *testing.T) {
	s, _, out := newTestSession()

	for _, line := range []string{"insert 83 0", "insert 300 20", "insert 516 40", "insert 83 60"} {
		require.NoError(t, s.Exec(line))
	}

	out.Reset()
	require.NoError(t, s.Exec("column 0 100"))
	assert.Contains(t, out.String(), "(83, 0)")
	assert.Contains(t, out.String(), "(83, 60)")
	assert.NotContains(t, out.String(), "(300, 20)")

	out.Reset()
	require.NoError(t, s.Exec("traverse preorder"))
	assert.Contains(t, out.String(), "preorder traversal")

	out.Reset()
	require.NoError(t, s.Exec("traverse"))
	for _, name := range []string{"inorder", "preorder", "postorder", "breadthfirst"} {
		assert.Contains(t, out.String(), name+" traversal")
	}

	assert.Error(t, s.Exec("traverse sideways"))
}

func TestSessionErrors(t *testing.T) {
	s, _, _ := newTestSession()

	tests := []struct {
		name string
		line string
	}{
		{"missing coordinates", "insert 1"},
		{"bad number", "insert one 2"},
		{"bad kind", "insert 1 2 rocket"},
		{"unbalanced quote", `insert 1 2 normal "oops`},
		{"column arity", "column 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, s.Exec(tt.line))
		})
	}

	err := s.Exec("fly 1 2")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestSessionQuotedID(t *testing.T) {
	s, idx, _ := newTestSession()

	require.NoError(t, s.Exec(`insert 5 5 bonus "gold coin"`))
	o, ok := idx.Lookup(road.Point{X: 5, Y: 5})
	require.True(t, ok)
	assert.Equal(t, "gold coin", o.ID)
	assert.Equal(t, road.Bonus, o.Kind)
}

func TestSessionRun(t *testing.T) {
	s, idx, _ := newTestSession()

	script := `# spawn a few obstacles
insert 83 0

insert 300 0
stats
`
	require.NoError(t, s.Run(strings.NewReader(script)))
	assert.Equal(t, 2, idx.Len())

	err := s.Run(strings.NewReader("insert 1 1\nbogus\ninsert 2 2\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "line 2")
	assert.False(t, idx.Contains(road.Point{X: 2, Y: 2}))
}
