package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.68, Round2(2.675))
	assert.Equal(t, 1.01, Round2(1.005))
	assert.Equal(t, -2.68, Round2(-2.675))
	assert.Equal(t, 52.3, Round2(52.2999999))
	assert.Equal(t, 0.0, Round2(0.0))
}

func TestRound4(t *testing.T) {
	assert.Equal(t, 0.0001, Round4(0.00005))
	assert.Equal(t, -0.0034, Round4(-0.00341))
	assert.Equal(t, 0.002, Round4(0.002))
}

func TestRoundPlaces(t *testing.T) {
	assert.Equal(t, 33.3, Round(100.0/3.0, 1))
	assert.Equal(t, 0.02, Round(0.020000000000000018, 3))
}
