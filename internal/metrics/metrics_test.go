package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveGeneration(t *testing.T) {
	before := testutil.ToFloat64(generationsTotal.WithLabelValues("invalid_json"))

	ObserveGeneration("invalid_json", 1500*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(generationsTotal.WithLabelValues("invalid_json")))
}

func TestObserveValidation(t *testing.T) {
	beforeValid := testutil.ToFloat64(validationsTotal.WithLabelValues("true"))
	beforeInvalid := testutil.ToFloat64(validationsTotal.WithLabelValues("false"))

	ObserveValidation(true)
	ObserveValidation(false)
	ObserveValidation(false)

	assert.Equal(t, beforeValid+1, testutil.ToFloat64(validationsTotal.WithLabelValues("true")))
	assert.Equal(t, beforeInvalid+2, testutil.ToFloat64(validationsTotal.WithLabelValues("false")))
}
