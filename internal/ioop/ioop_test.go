package ioop

import "testing"

func TestFromNameResolvesCatalogEntries(t *testing.T) {
	op, ok := FromName("print")
	if !ok {
		t.Fatal("print should be in the embedded catalog")
	}
	if op.Name() != "print" || op.Args() != 1 || op.Outputs() != 0 {
		t.Fatalf("unexpected metadata for print: name=%s args=%d outputs=%d", op.Name(), op.Args(), op.Outputs())
	}
}

func TestFromNameUnknownFails(t *testing.T) {
	if _, ok := FromName("not_an_op"); ok {
		t.Fatal("unknown names should not resolve")
	}
}

func TestAllCoversEveryManifestEntry(t *testing.T) {
	ops := All()
	if len(ops) == 0 {
		t.Fatal("the embedded manifest should not be empty")
	}
	for _, op := range ops {
		if op.Name() == "" {
			t.Fatalf("operation %d has no name", op)
		}
	}
}
