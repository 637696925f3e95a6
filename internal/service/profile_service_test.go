package service

import (
	"context"
	"testing"

	"chatfuture/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_SaveAndLoad(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	assert.False(t, env.profiles.HasBasicInfo(ctx, "u1"))

	saved, err := env.profiles.SaveBasicInfo(ctx, "u1", model.BasicInfo{
		Name:       "  小林 ",
		Gender:     model.GenderFemale,
		AgeRange:   model.Age26To35,
		Occupation: " 软件工程师 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "小林", saved.Name)
	assert.Equal(t, "软件工程师", saved.Occupation)
	assert.False(t, saved.CompletedAt.IsZero())

	loaded, err := env.profiles.BasicInfo(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved.Occupation, loaded.Occupation)
	assert.True(t, env.profiles.HasBasicInfo(ctx, "u1"))
	assert.False(t, env.profiles.HasBasicInfo(ctx, "u2"))

	require.NoError(t, env.profiles.ClearBasicInfo(ctx, "u1"))
	assert.False(t, env.profiles.HasBasicInfo(ctx, "u1"))
}

func TestProfileService_Validation(t *testing.T) {
	valid := model.BasicInfo{Gender: model.GenderMale, AgeRange: model.Age18To25, Occupation: "学生"}

	tests := []struct {
		name   string
		mutate func(*model.BasicInfo)
	}{
		{"missing gender", func(b *model.BasicInfo) { b.Gender = "" }},
		{"unknown gender", func(b *model.BasicInfo) { b.Gender = "other" }},
		{"unknown age range", func(b *model.BasicInfo) { b.AgeRange = "30-40" }},
		{"blank occupation", func(b *model.BasicInfo) { b.Occupation = "   " }},
		{"one character occupation", func(b *model.BasicInfo) { b.Occupation = " 医 " }},
		{"name too long", func(b *model.BasicInfo) {
			b.Name = "abcdefghijabcdefghijabcdefghijabcdefghijabcdefghijk"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			info := valid
			tt.mutate(&info)

			_, err := env.profiles.SaveBasicInfo(context.Background(), "u1", info)
			assert.ErrorIs(t, err, ErrInvalidProfile)
			assert.False(t, env.profiles.HasBasicInfo(context.Background(), "u1"))
		})
	}

	env := newTestEnv(t)
	_, err := env.profiles.SaveBasicInfo(context.Background(), "u1", valid)
	assert.NoError(t, err)
}

func TestProfileService_StorageFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.store.Fail(true, false, false)
	_, err := env.profiles.SaveBasicInfo(ctx, "u1", model.BasicInfo{
		Gender: model.GenderMale, AgeRange: model.Age55Plus, Occupation: "退休教师",
	})
	assert.ErrorIs(t, err, ErrPersistenceUnavailable)

	env.store.Fail(false, true, false)
	_, err = env.profiles.BasicInfo(ctx, "u1")
	assert.ErrorIs(t, err, ErrPersistenceUnavailable)
	assert.False(t, env.profiles.HasBasicInfo(ctx, "u1"))
}
