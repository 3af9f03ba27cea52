package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitParsesLevel(t *testing.T) {
	Init("warn")
	if Logger.GetLevel() != logrus.WarnLevel {
		t.Fatalf("expected warn level, got %s", Logger.GetLevel())
	}

	Init("not-a-level")
	if Logger.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected fallback to debug level, got %s", Logger.GetLevel())
	}
}

func TestContextWithFieldsMerges(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]interface{}{"request_id": "abc"})
	ctx = ContextWithFields(ctx, map[string]interface{}{"route": "/"})

	entry := FromContext(ctx)
	if entry.Data["request_id"] != "abc" {
		t.Errorf("expected request_id to survive merge, got %v", entry.Data["request_id"])
	}
	if entry.Data["route"] != "/" {
		t.Errorf("expected route field, got %v", entry.Data["route"])
	}
}

func TestFromContextWithoutFields(t *testing.T) {
	entry := FromContext(context.Background())
	if len(entry.Data) != 0 {
		t.Fatalf("expected no fields, got %v", entry.Data)
	}
}
