package memory_test

import (
	"testing"

	"github.com/aretw0/abacus/internal/adapters/memory"
	"github.com/aretw0/abacus/pkg/ports"
)

func TestMemoryCache_Contract(t *testing.T) {
	ports.RunCacheContract(t, memory.New())
}
