package reconciler_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s2wiki/pagetools/pkg/pages"
	"github.com/s2wiki/pagetools/pkg/reconciler"
	"github.com/s2wiki/pagetools/pkg/sources"
)

func TestAggregateCompleteness(t *testing.T) {
	games := []sources.ID{sources.CS2, sources.HLA, sources.Dota2}
	names := []string{"door", "button", "trigger_once", "light"}

	var records []*pages.Page
	for _, g := range games {
		for i, n := range names {
			if (i+len(g))%3 == 0 {
				continue
			}
			records = append(records, &pages.Page{Game: g, Name: n, Description: fmt.Sprintf("%s in %s", n, g)})
		}
	}

	set := reconciler.Aggregate(records)

	seen := 0
	for _, rec := range records {
		doc, ok := set.Get(rec.Name)
		require.True(t, ok, "document for %s", rec.Name)
		count := 0
		for _, p := range doc.Pages {
			if p == rec {
				count++
			}
		}
		assert.Equal(t, 1, count, "record %s/%s must appear exactly once", rec.Name, rec.Game)
		seen++
	}
	assert.Equal(t, len(records), set.Pages())
	assert.Equal(t, len(records), seen)

	for _, doc := range set.Documents() {
		for _, p := range doc.Pages {
			assert.Equal(t, doc.Name, p.Name)
		}
	}
}

func TestAggregateKeepsOrderAndDuplicates(t *testing.T) {
	first := &pages.Page{Game: sources.CS2, Name: "door", Description: "first"}
	hla := &pages.Page{Game: sources.HLA, Name: "door"}
	second := &pages.Page{Game: sources.CS2, Name: "door", Description: "second"}

	set := reconciler.Aggregate([]*pages.Page{first, hla, second})
	doc, ok := set.Get("door")
	require.True(t, ok)

	assert.Equal(t, []*pages.Page{first, hla, second}, doc.Pages)
	assert.Same(t, second, doc.Latest(sources.CS2), "last record wins for single page consumers")
}

func TestSet(t *testing.T) {
	set := reconciler.NewSet()
	assert.Zero(t, set.Len())

	set.Put(pages.NewDocument("zombie"))
	set.Put(pages.NewDocument("ammo"))
	set.Put(pages.NewDocument("light"))

	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []string{"ammo", "light", "zombie"}, set.Names())
	docs := set.Documents()
	assert.Equal(t, "ammo", docs[0].Name)

	_, ok := set.Get("missing")
	assert.False(t, ok)
}

func TestStaticReturnsCopies(t *testing.T) {
	static := reconciler.Static{{Game: sources.CS2, Name: "door", Description: "A door."}}

	first, err := static.Records(context.Background())
	require.NoError(t, err)
	first[0].Description = "mutated"

	second, err := static.Records(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A door.", second[0].Description)
	assert.Equal(t, "A door.", static[0].Description)
}
