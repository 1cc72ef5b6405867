package exercise_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"drill/internal/exercise"
	"drill/pkg/serrors"
)

func TestRegistryRegisterDuplicate(t *testing.T) {
	registry := exercise.NewRegistry()

	spec := exercise.Spec{Name: "double", Description: "doubles"}
	require.NoError(t, registry.Register(spec))

	err := registry.Register(spec)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already registered")
}

func TestRegistryGetUnknown(t *testing.T) {
	registry := exercise.NewRegistry()

	_, err := registry.Get("nope")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestRegistryAllPreservesOrder(t *testing.T) {
	registry := exercise.NewRegistry()
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, registry.Register(exercise.Spec{Name: name}))
	}

	specs := registry.All()
	require.Len(t, specs, 3)
	require.Equal(t, "charlie", specs[0].Name)
	require.Equal(t, "alpha", specs[1].Name)
	require.Equal(t, "bravo", specs[2].Name)
}

func TestBuiltIn(t *testing.T) {
	registry, err := exercise.BuiltIn()
	require.NoError(t, err)

	wantOrder := []string{
		"doubleNum",
		"lastChar",
		"max",
		"abs",
		"countVowels",
		"tableRow",
		"randomBetween",
		"containsDigit",
		"average",
		"isStrong",
	}

	specs := registry.All()
	require.Len(t, specs, len(wantOrder))
	for i, spec := range specs {
		require.Equal(t, wantOrder[i], spec.Name)
		require.NotEmpty(t, spec.Description)
		require.NotEmpty(t, spec.Cases)

		for _, c := range spec.Cases {
			require.NotNil(t, c.Run, "%s case %q has no Run", spec.Name, c.Give)
			if c.Check == nil {
				require.NotEmpty(t, c.Want, "%s case %q has neither Want nor Check", spec.Name, c.Give)
			}
		}
	}
}
