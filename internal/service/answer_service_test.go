package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"chatfuture/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerService_RequiresActiveSession(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.answers.SaveAnswer(context.Background(), "u1", &model.AnswerRequest{
		QuestionID:   "RIASEC_R_001",
		OptionID:     "ri_2",
		InstrumentID: model.InstrumentInterest,
	})
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestAnswerService_RejectsInvalidAnswers(t *testing.T) {
	tests := []struct {
		name string
		req  model.AnswerRequest
	}{
		{"unknown instrument", model.AnswerRequest{QuestionID: "RIASEC_R_001", OptionID: "ri_2", InstrumentID: "mbti"}},
		{"unknown question", model.AnswerRequest{QuestionID: "RIASEC_X_001", OptionID: "ri_2", InstrumentID: model.InstrumentInterest}},
		{"question of another instrument", model.AnswerRequest{QuestionID: "BF_O_001", OptionID: "bf_2", InstrumentID: model.InstrumentInterest}},
		{"option of another question", model.AnswerRequest{QuestionID: "values_001", OptionID: "opt_007", InstrumentID: model.InstrumentValues}},
		{"option of another instrument", model.AnswerRequest{QuestionID: "RIASEC_R_001", OptionID: "bf_2", InstrumentID: model.InstrumentInterest}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			ctx := context.Background()
			env.sessions.Create(ctx, "u1")
			before := env.sessions.Current(ctx, "u1")

			req := tt.req
			_, err := env.answers.SaveAnswer(ctx, "u1", &req)
			assert.ErrorIs(t, err, ErrInvalidAnswer)

			after := env.sessions.Current(ctx, "u1")
			assert.Empty(t, after.Answers)
			assert.Equal(t, before.LastUpdateTime, after.LastUpdateTime)
		})
	}
}

func TestAnswerService_LastWriteWins(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.sessions.Create(ctx, "u1")

	env.answer(t, "u1", model.InstrumentInterest, "RIASEC_R_001", "ri_2")
	env.answer(t, "u1", model.InstrumentInterest, "RIASEC_I_001", "ri_1")
	sess := env.answer(t, "u1", model.InstrumentInterest, "RIASEC_R_001", "ri_-1")

	require.Len(t, sess.Answers, 2)
	a, ok := sess.AnswerFor("RIASEC_R_001")
	require.True(t, ok)
	assert.Equal(t, "ri_-1", a.OptionID)
	assert.Equal(t, "RIASEC_R_001", sess.Answers[1].QuestionID, "replaced answer moves to the end")
	assert.False(t, sess.LastUpdateTime.Before(sess.StartTime))
}

func TestAnswerService_ConcurrentDistinctQuestions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.sessions.Create(ctx, "u1")

	questions, err := env.catalog.Questions(model.InstrumentInterest)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, len(questions))
	for _, q := range questions {
		wg.Add(1)
		go func(qid string) {
			defer wg.Done()
			_, err := env.answers.SaveAnswer(ctx, "u1", &model.AnswerRequest{
				QuestionID:   qid,
				OptionID:     "ri_1",
				InstrumentID: model.InstrumentInterest,
			})
			errs <- err
		}(q.ID)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	assert.Len(t, env.sessions.Current(ctx, "u1").Answers, len(questions))
}

func TestAnswerService_ConcurrentSameQuestion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.sessions.Create(ctx, "u1")

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := env.answers.SaveAnswer(ctx, "u1", &model.AnswerRequest{
				QuestionID:   "BF_E_001",
				OptionID:     fmt.Sprintf("bf_%d", i%5-2),
				InstrumentID: model.InstrumentPersonality,
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	sess := env.sessions.Current(ctx, "u1")
	assert.Len(t, sess.Answers, 1)
}

func TestAnswerService_Notifies(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	notifier := &recordingNotifier{}
	env.answers.SetNotifier(notifier)
	env.sessions.Create(ctx, "u1")

	env.answer(t, "u1", model.InstrumentAptitude, "apt_NR_001", "likert_2")
	progress, err := env.answers.CompleteInstrument(ctx, "u1", model.InstrumentAptitude)
	require.NoError(t, err)
	assert.True(t, progress.Instruments[3].Completed)

	assert.Equal(t, []string{"u1:" + MsgAnswerSaved, "u1:" + MsgInstrumentCompleted}, notifier.Events())
}

func TestAnswerService_CompleteInstrumentWithoutSession(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.answers.CompleteInstrument(context.Background(), "u1", model.InstrumentAptitude)
	assert.ErrorIs(t, err, ErrNoActiveSession)
}
