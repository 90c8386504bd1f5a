package store

import (
	"context"
	"testing"
	"time"

	"portfolio-cli/internal/model"
)

func TestOpLogAppendAndList(t *testing.T) {
	t.Setenv("PORTFOLIO_CONFIG_DIR", t.TempDir())
	ctx := context.Background()

	log, err := OpenOpLog(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer log.Close()

	p1 := model.Project{ID: "1", Title: "Alpha", Status: model.StatusIdeation}
	p2 := model.Project{ID: "1", Title: "Alpha v2", Status: model.StatusPilot}
	if err := log.Append(ctx, "create", p1); err != nil {
		t.Fatal(err)
	}
	time.Sleep(2 * time.Millisecond)
	if err := log.Append(ctx, "update", p2); err != nil {
		t.Fatal(err)
	}

	ops, err := log.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 2 {
		t.Fatalf("got %d ops", len(ops))
	}
	if ops[0].Kind != "update" || ops[1].Kind != "create" {
		t.Errorf("order: %s, %s; want newest first", ops[0].Kind, ops[1].Kind)
	}
	if ops[0].Snapshot.Status != model.StatusPilot {
		t.Errorf("snapshot status = %q", ops[0].Snapshot.Status)
	}

	limited, err := log.List(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 || limited[0].Kind != "update" {
		t.Errorf("limited = %+v", limited)
	}
}

func TestOpLogSurvivesReopen(t *testing.T) {
	t.Setenv("PORTFOLIO_CONFIG_DIR", t.TempDir())
	ctx := context.Background()

	log, err := OpenOpLog(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err := log.Append(ctx, "create", model.Project{ID: "9", Title: "Keep"}); err != nil {
		t.Fatal(err)
	}
	if err := log.Close(); err != nil {
		t.Fatal(err)
	}

	log2, err := OpenOpLog(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer log2.Close()
	ops, err := log2.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 1 || ops[0].Title != "Keep" {
		t.Errorf("ops = %+v", ops)
	}
}
