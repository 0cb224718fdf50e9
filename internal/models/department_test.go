package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDepartment(t *testing.T) {
	department, err := NewDepartment("  Engineering  ")
	require.NoError(t, err)
	assert.NotEmpty(t, department.ID)
	assert.Equal(t, "Engineering", department.Name)
}

func TestNewDepartment_EmptyName(t *testing.T) {
	_, err := NewDepartment("   ")
	assert.Error(t, err)
}

func TestDepartment_Rename(t *testing.T) {
	department, err := NewDepartment("Engineering")
	require.NoError(t, err)

	renamed, err := department.Rename("Platform Engineering")
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineering", renamed.Name)
	assert.Equal(t, department.ID, renamed.ID)

	_, err = department.Rename("")
	assert.Error(t, err)
}

func TestDepartment_Equals(t *testing.T) {
	a, err := NewDepartment("Engineering")
	require.NoError(t, err)
	b, err := NewDepartment("Engineering")
	require.NoError(t, err)

	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(b))
}
