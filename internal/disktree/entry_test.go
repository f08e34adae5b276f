package disktree

import (
	"testing"
	"time"
)

func TestRecalculateTotals(t *testing.T) {
	root := NewDir("/t", "t")
	f1 := NewFile("/t/a", "a", 100, 512, time.Now())
	f2 := NewFile("/t/b", "b", 200, 512, time.Now())

	sub := NewDir("/t/s", "s")
	f3 := NewFile("/t/s/c", "c", 50, 512, time.Now())
	sub.AddChild(f3)
	sub.RecalculateTotals()

	root.AddChild(f1)
	root.AddChild(f2)
	root.AddChild(sub)
	root.RecalculateTotals()

	if root.Size != 350 {
		t.Errorf("root.Size = %d, want 350", root.Size)
	}
	if root.FileCount != 3 {
		t.Errorf("root.FileCount = %d, want 3", root.FileCount)
	}
	if root.DirCount != 1 {
		t.Errorf("root.DirCount = %d, want 1", root.DirCount)
	}
	if sub.Size != 50 {
		t.Errorf("sub.Size = %d, want 50", sub.Size)
	}
}

func TestErrorLeafContributesZero(t *testing.T) {
	root := NewDir("/t", "t")
	root.AddChild(NewFile("/t/a", "a", 100, 512, time.Now()))
	root.AddChild(NewErrorLeaf("/t/denied", "denied", "permission denied"))
	root.RecalculateTotals()

	if root.Size != 100 {
		t.Errorf("root.Size = %d, want 100", root.Size)
	}
	if root.FileCount != 1 {
		t.Errorf("root.FileCount = %d, want 1 (error leaf must not count)", root.FileCount)
	}
}

func TestSortBySize(t *testing.T) {
	root := NewDir("/t", "t")
	root.AddChild(NewFile("/t/small", "small", 10, 512, time.Now()))
	root.AddChild(NewFile("/t/big", "big", 100, 512, time.Now()))
	root.AddChild(NewFile("/t/mid", "mid", 50, 512, time.Now()))
	root.RecalculateTotals()

	root.Sort(SortBySize)

	want := []string{"big", "mid", "small"}
	for i, name := range want {
		if root.Children[i].Name != name {
			t.Errorf("children[%d] = %q, want %q", i, root.Children[i].Name, name)
		}
	}
}

func TestSortBySizeTieBreaksOnName(t *testing.T) {
	root := NewDir("/t", "t")
	root.AddChild(NewFile("/t/zeta", "zeta", 50, 512, time.Now()))
	root.AddChild(NewFile("/t/alpha", "alpha", 50, 512, time.Now()))
	root.RecalculateTotals()

	root.Sort(SortBySize)

	if root.Children[0].Name != "alpha" || root.Children[1].Name != "zeta" {
		t.Errorf("tie-break order = [%s, %s], want [alpha, zeta]",
			root.Children[0].Name, root.Children[1].Name)
	}
}

func TestSortByName(t *testing.T) {
	root := NewDir("/t", "t")
	root.AddChild(NewFile("/t/banana", "banana", 1, 512, time.Now()))
	root.AddChild(NewFile("/t/apple", "apple", 1, 512, time.Now()))
	root.RecalculateTotals()

	root.Sort(SortByName)

	if root.Children[0].Name != "apple" || root.Children[1].Name != "banana" {
		t.Errorf("name order = [%s, %s], want [apple, banana]",
			root.Children[0].Name, root.Children[1].Name)
	}
}

func TestSortByMTimeMissingLast(t *testing.T) {
	root := NewDir("/t", "t")
	now := time.Now()
	withTime := NewFile("/t/recent", "recent", 1, 512, now)
	older := NewFile("/t/older", "older", 1, 512, now.Add(-time.Hour))
	noTime := NewErrorLeaf("/t/nodate", "nodate", "stat failed")
	root.AddChild(older)
	root.AddChild(noTime)
	root.AddChild(withTime)
	root.RecalculateTotals()

	root.Sort(SortByMTime)

	want := []string{"recent", "older", "nodate"}
	for i, name := range want {
		if root.Children[i].Name != name {
			t.Errorf("children[%d] = %q, want %q", i, root.Children[i].Name, name)
		}
	}
}

func TestSortNextCycle(t *testing.T) {
	k := SortBySize
	k = k.Next()
	if k != SortByName {
		t.Errorf("SortBySize.Next() = %v, want SortByName", k)
	}
	k = k.Next()
	if k != SortByMTime {
		t.Errorf("SortByName.Next() = %v, want SortByMTime", k)
	}
	k = k.Next()
	if k != SortBySize {
		t.Errorf("SortByMTime.Next() = %v, want SortBySize", k)
	}
}

func TestSortingPreservesTotals(t *testing.T) {
	root := NewDir("/t", "t")
	root.AddChild(NewFile("/t/a", "a", 10, 512, time.Now()))
	root.AddChild(NewFile("/t/b", "b", 20, 512, time.Now()))
	root.RecalculateTotals()
	before := root.Size

	root.Sort(SortByName)

	if root.Size != before {
		t.Errorf("sorting changed root.Size: %d -> %d", before, root.Size)
	}
}
