package model_test

import (
	"encoding/json"
	"testing"

	"erp-lookup/internal/model"
)

func TestLookupItem_JSON(t *testing.T) {
	t.Run("flags pass through", func(t *testing.T) {
		var item model.LookupItem
		raw := `{"id":"wh-1","label":"Main","isPickupLocation":true,"issueReasons":["damaged"]}`
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != "wh-1" || item.Label != "Main" {
			t.Errorf("unexpected item: %+v", item)
		}
		if v, ok := item.Flag("isPickupLocation"); !ok || v != true {
			t.Errorf("expected isPickupLocation flag, got %v", item.Flags)
		}

		out, err := json.Marshal(item)
		if err != nil {
			t.Fatalf("unexpected marshal error: %v", err)
		}
		var back map[string]any
		json.Unmarshal(out, &back)
		if back["isPickupLocation"] != true || back["id"] != "wh-1" {
			t.Errorf("flags not flattened: %s", out)
		}
	})

	t.Run("numeric id", func(t *testing.T) {
		var item model.LookupItem
		if err := json.Unmarshal([]byte(`{"id":42,"label":"Answer"}`), &item); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != "42" {
			t.Errorf("expected id 42, got %q", item.ID)
		}
		if item.Flags != nil {
			t.Errorf("expected no flags, got %v", item.Flags)
		}
	})

	t.Run("bad id", func(t *testing.T) {
		var item model.LookupItem
		if err := json.Unmarshal([]byte(`{"id":{"x":1}}`), &item); err == nil {
			t.Errorf("expected error for object id")
		}
	})
}

func TestScope_HasPermission(t *testing.T) {
	sc := model.Scope{Permissions: []string{"lookup:customers"}}
	if !sc.HasPermission("lookup:customers") {
		t.Errorf("expected permission")
	}
	if sc.HasPermission("lookup:pricing") {
		t.Errorf("unexpected permission")
	}
	if !(model.Scope{Permissions: []string{"*"}}).HasPermission("anything") {
		t.Errorf("wildcard should grant everything")
	}
}
