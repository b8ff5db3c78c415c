package integration

import (
	"reflect"
	"testing"

	"github.com/mesh-intelligence/kpalwiki/pkg/wiki"
)

func TestExportImportSelfMergeIsNoOp(t *testing.T) {
	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			svc := setupService(t, be.open)
			store := mustLoad(t, svc)
			store = mustCreate(t, svc, store, "Notes")

			exported, err := wiki.ExportAll(store)
			if err != nil {
				t.Fatalf("ExportAll: %v", err)
			}

			merged, err := svc.Import(store, exported)
			if err != nil {
				t.Fatalf("Import: %v", err)
			}
			if !reflect.DeepEqual(merged, store) {
				t.Errorf("merging a store with its own export changed it")
			}

			reloaded := mustLoad(t, svc)
			if !reflect.DeepEqual(reloaded, store) {
				t.Errorf("persisted store differs after self-import")
			}
		})
	}
}

func TestImportOverridesByKey(t *testing.T) {
	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			svc := setupService(t, be.open)
			store := mustLoad(t, svc)

			raw := []byte(`{"About": {"title": "About", "content": "X", "updated": 1}}`)
			merged, err := svc.Import(store, raw)
			if err != nil {
				t.Fatalf("Import: %v", err)
			}

			if merged["About"].Content != "X" {
				t.Errorf("imported version must win, got %q", merged["About"].Content)
			}
			if merged["About"].Updated != 1 {
				t.Errorf("imported timestamp must be kept as-is, got %d", merged["About"].Updated)
			}
			if !reflect.DeepEqual(merged["Home"], store["Home"]) {
				t.Error("pages absent from the import must be unchanged")
			}

			reloaded := mustLoad(t, svc)
			if reloaded["About"].Content != "X" {
				t.Error("import was not persisted")
			}
		})
	}
}

func TestImportMalformedLeavesStoreUntouched(t *testing.T) {
	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			svc := setupService(t, be.open)
			store := mustLoad(t, svc)
			store = mustCreate(t, svc, store, "Notes")

			for _, raw := range []string{`[1]`, `"x"`, `{"Home":`} {
				if _, err := svc.Import(store, []byte(raw)); err == nil {
					t.Errorf("expected import of %q to fail", raw)
				}
			}

			reloaded := mustLoad(t, svc)
			if !reflect.DeepEqual(reloaded, store) {
				t.Error("failed imports must not change the persisted store")
			}
		})
	}
}

func TestCrossBackendExportImport(t *testing.T) {
	jsonSvc := setupService(t, backends[0].open)
	sqliteSvc := setupService(t, backends[1].open)

	store := mustLoad(t, jsonSvc)
	store = mustCreate(t, jsonSvc, store, "Notes")

	exported, err := wiki.ExportAll(store)
	if err != nil {
		t.Fatalf("ExportAll: %v", err)
	}

	target := mustLoad(t, sqliteSvc)
	merged, err := sqliteSvc.Import(target, exported)
	if err != nil {
		t.Fatalf("Import into sqlite: %v", err)
	}

	if !reflect.DeepEqual(merged, store) {
		t.Errorf("a full export import must reproduce the source store\nwant %v\ngot  %v", store.Titles(), merged.Titles())
	}
}
