package service_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lshigami/Lorikeets/internal/dto"
	"github.com/lshigami/Lorikeets/internal/model"
	"github.com/lshigami/Lorikeets/internal/service"
	"github.com/lshigami/Lorikeets/internal/transcript"
)

type fakeQuestionRepository struct {
	questions map[uint]model.Question
}

func (r *fakeQuestionRepository) FindByID(id uint) (*model.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, gormNotFound{}
	}
	return &q, nil
}

func (r *fakeQuestionRepository) FindByInterviewID(interviewID uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range r.questions {
		if q.InterviewID == interviewID {
			out = append(out, q)
		}
	}
	return out, nil
}

type gormNotFound struct{}

func (gormNotFound) Error() string { return "record not found" }

// fakeGraderService counts calls and can block until released, so tests can
// hold an evaluation in flight.
type fakeGraderService struct {
	mu      sync.Mutex
	calls   int
	grade   model.GradeResult
	err     error
	release chan struct{}
}

func (g *fakeGraderService) GradeAnswer(ctx context.Context, question, referenceAnswer, userAnswer string) (model.GradeResult, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	if g.release != nil {
		<-g.release
	}
	return g.grade, g.err
}

func (g *fakeGraderService) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type recordingFixture struct {
	svc    service.RecordingService
	grader *fakeGraderService
	repo   *fakeUserAnswerRepository
}

func newRecordingFixture(t *testing.T, grader *fakeGraderService) *recordingFixture {
	t.Helper()
	questions := &fakeQuestionRepository{questions: map[uint]model.Question{
		1: {ID: 1, InterviewID: 7, Prompt: "What is a goroutine?", ReferenceAnswer: "A lightweight thread managed by the Go runtime.", OrderInInterview: 1},
	}}
	repo := &fakeUserAnswerRepository{}
	answers := service.NewAnswerService(repo)
	return &recordingFixture{
		svc:    service.NewRecordingService(questions, grader, answers),
		grader: grader,
		repo:   repo,
	}
}

func (f *recordingFixture) start(t *testing.T) string {
	t.Helper()
	sess, err := f.svc.StartSession(dto.StartRecordingDTO{UserID: "user-42", InterviewID: 7, QuestionID: 1})
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if sess.State != string(service.StateRecording) {
		t.Fatalf("initial State=%q, want %q", sess.State, service.StateRecording)
	}
	return sess.ID
}

func (f *recordingFixture) push(t *testing.T, sessionID, text string, final bool) *dto.RecordingSessionDTO {
	t.Helper()
	sess, err := f.svc.PushFragment(sessionID, transcript.Fragment{Text: text, Final: final, ReceivedAt: time.Now()})
	if err != nil {
		t.Fatalf("PushFragment(%q): %v", text, err)
	}
	return sess
}

// waitForState polls until the asynchronous evaluation settles the session
// into the wanted state.
func (f *recordingFixture) waitForState(t *testing.T, sessionID string, want service.SessionState) *dto.RecordingSessionDTO {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		sess, err := f.svc.GetSession(sessionID)
		if err != nil {
			t.Fatalf("GetSession: %v", err)
		}
		if sess.State == string(want) {
			return sess
		}
		if time.Now().After(deadline) {
			t.Fatalf("session never reached state %q, stuck at %q", want, sess.State)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func hasNotice(sess *dto.RecordingSessionDTO, kind, message string) bool {
	for _, n := range sess.Notices {
		if n.Kind == kind && n.Message == message {
			return true
		}
	}
	return false
}

const longAnswer = "A goroutine is a lightweight thread of execution managed by the Go runtime scheduler."

func TestStartSession_UnknownQuestionAndInterviewMismatch(t *testing.T) {
	t.Parallel()

	f := newRecordingFixture(t, &fakeGraderService{})

	if _, err := f.svc.StartSession(dto.StartRecordingDTO{UserID: "user-42", InterviewID: 7, QuestionID: 99}); err == nil {
		t.Error("StartSession with unknown question succeeded, want error")
	}
	if _, err := f.svc.StartSession(dto.StartRecordingDTO{UserID: "user-42", InterviewID: 8, QuestionID: 1}); err == nil {
		t.Error("StartSession with mismatched interview succeeded, want error")
	}
}

func TestStopRecording_ShortAnswerNeverReachesTheGrader(t *testing.T) {
	t.Parallel()

	f := newRecordingFixture(t, &fakeGraderService{grade: model.GradeResult{Rating: 9, Feedback: "good"}})
	id := f.start(t)
	f.push(t, id, "Too short.", true)

	sess, err := f.svc.StopRecording(id)
	if err != nil {
		t.Fatalf("StopRecording: %v", err)
	}
	if sess.State != string(service.StateIdle) {
		t.Errorf("State=%q, want %q", sess.State, service.StateIdle)
	}
	if sess.Grade != nil {
		t.Errorf("Grade=%+v, want nil", sess.Grade)
	}
	if !hasNotice(sess, "error", "Your answer should be more than 30 characters") {
		t.Errorf("missing validation notice, got %+v", sess.Notices)
	}
	if f.grader.callCount() != 0 {
		t.Errorf("grader called %d times for a short answer, want 0", f.grader.callCount())
	}
}

func TestStopRecording_LengthBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		answer    string
		wantState service.SessionState
	}{
		{name: "one below minimum", answer: strings.Repeat("a", 29), wantState: service.StateIdle},
		{name: "exactly minimum", answer: strings.Repeat("a", 30), wantState: service.StateEvaluated},
		{name: "padding does not count", answer: "   " + strings.Repeat("a", 29) + "   ", wantState: service.StateIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newRecordingFixture(t, &fakeGraderService{grade: model.GradeResult{Rating: 7, Feedback: "fine"}})
			id := f.start(t)
			f.push(t, id, tt.answer, true)

			if _, err := f.svc.StopRecording(id); err != nil {
				t.Fatalf("StopRecording: %v", err)
			}
			f.waitForState(t, id, tt.wantState)
		})
	}
}

func TestRecordEvaluateSave_HappyPath(t *testing.T) {
	t.Parallel()

	f := newRecordingFixture(t, &fakeGraderService{grade: model.GradeResult{Rating: 8, Feedback: "Solid answer."}})
	id := f.start(t)

	f.push(t, id, "A goroutine is", false)
	f.push(t, id, "A goroutine is a lightweight thread", true)
	sess := f.push(t, id, "managed by the Go runtime scheduler.", true)
	if want := "A goroutine is a lightweight thread managed by the Go runtime scheduler."; sess.Answer != want {
		t.Fatalf("Answer=%q, want %q", sess.Answer, want)
	}

	if _, err := f.svc.StopRecording(id); err != nil {
		t.Fatalf("StopRecording: %v", err)
	}
	sess = f.waitForState(t, id, service.StateEvaluated)
	if sess.Grade == nil || sess.Grade.Rating != 8 || sess.Grade.Feedback != "Solid answer." {
		t.Fatalf("Grade=%+v, want rating 8 with feedback", sess.Grade)
	}

	resp, err := f.svc.SaveAnswer(id)
	if err != nil {
		t.Fatalf("SaveAnswer: %v", err)
	}
	if resp.Status != string(service.SaveStatusSaved) {
		t.Fatalf("Status=%q, want %q", resp.Status, service.SaveStatusSaved)
	}
	if resp.Session.State != string(service.StateSaved) {
		t.Errorf("State=%q, want %q", resp.Session.State, service.StateSaved)
	}
	if !hasNotice(&resp.Session, "success", "Your answer has been saved.") {
		t.Errorf("missing success notice, got %+v", resp.Session.Notices)
	}
	if len(f.repo.records) != 1 {
		t.Fatalf("repository has %d records, want 1", len(f.repo.records))
	}
	rec := f.repo.records[0]
	if rec.UserID != "user-42" || rec.MockIDRef != 7 || rec.Rating != 8 {
		t.Errorf("stored record %+v does not match the session", rec)
	}
}

func TestSaveAnswer_WithoutGradeKeepsStateAndWritesNothing(t *testing.T) {
	t.Parallel()

	f := newRecordingFixture(t, &fakeGraderService{})
	id := f.start(t)
	f.push(t, id, longAnswer, true)

	resp, err := f.svc.SaveAnswer(id)
	if err != nil {
		t.Fatalf("SaveAnswer: %v", err)
	}
	if resp.Status != string(service.SaveStatusRejected) {
		t.Fatalf("Status=%q, want %q", resp.Status, service.SaveStatusRejected)
	}
	if !hasNotice(&resp.Session, "error", "No AI result to save.") {
		t.Errorf("missing notice, got %+v", resp.Session.Notices)
	}
	if resp.Session.State != string(service.StateRecording) {
		t.Errorf("State=%q, want %q (restored)", resp.Session.State, service.StateRecording)
	}
	if len(f.repo.records) != 0 {
		t.Errorf("repository has %d records, want 0", len(f.repo.records))
	}
}

func TestSaveAnswer_DuplicateIsInformational(t *testing.T) {
	t.Parallel()

	f := newRecordingFixture(t, &fakeGraderService{grade: model.GradeResult{Rating: 6, Feedback: "ok"}})

	runOnce := func() *dto.SaveResponseDTO {
		id := f.start(t)
		f.push(t, id, longAnswer, true)
		if _, err := f.svc.StopRecording(id); err != nil {
			t.Fatalf("StopRecording: %v", err)
		}
		f.waitForState(t, id, service.StateEvaluated)
		resp, err := f.svc.SaveAnswer(id)
		if err != nil {
			t.Fatalf("SaveAnswer: %v", err)
		}
		return resp
	}

	first := runOnce()
	if first.Status != string(service.SaveStatusSaved) {
		t.Fatalf("first save Status=%q, want %q", first.Status, service.SaveStatusSaved)
	}

	second := runOnce()
	if second.Status != string(service.SaveStatusRejected) {
		t.Fatalf("second save Status=%q, want %q", second.Status, service.SaveStatusRejected)
	}
	if !hasNotice(&second.Session, "info", "You have already answered this question.") {
		t.Errorf("missing info notice, got %+v", second.Session.Notices)
	}
	if second.Session.State != string(service.StateEvaluated) {
		t.Errorf("State=%q, want %q (grade retained)", second.Session.State, service.StateEvaluated)
	}
	if second.Session.Grade == nil {
		t.Error("Grade discarded on duplicate rejection, want retained")
	}
	if len(f.repo.records) != 1 {
		t.Errorf("repository has %d records, want 1", len(f.repo.records))
	}
}

func TestRestartRecording_DiscardsTranscriptGradeAndStaleEvaluation(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	f := newRecordingFixture(t, &fakeGraderService{grade: model.GradeResult{Rating: 9, Feedback: "stale"}, release: release})
	id := f.start(t)
	f.push(t, id, longAnswer, true)
	if _, err := f.svc.StopRecording(id); err != nil {
		t.Fatalf("StopRecording: %v", err)
	}

	// Restart while the evaluation is still held in flight.
	sess, err := f.svc.RestartRecording(id)
	if err != nil {
		t.Fatalf("RestartRecording: %v", err)
	}
	if sess.State != string(service.StateRecording) {
		t.Errorf("State=%q, want %q", sess.State, service.StateRecording)
	}
	if sess.Answer != "" || sess.Grade != nil {
		t.Errorf("transcript or grade survived restart: Answer=%q Grade=%+v", sess.Answer, sess.Grade)
	}

	close(release)

	// The superseded result must not surface on the fresh recording.
	time.Sleep(50 * time.Millisecond)
	sess, err = f.svc.GetSession(id)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if sess.State != string(service.StateRecording) {
		t.Errorf("stale evaluation changed State to %q, want %q", sess.State, service.StateRecording)
	}
	if sess.Grade != nil {
		t.Errorf("stale evaluation set Grade=%+v, want nil", sess.Grade)
	}
}

func TestPushFragment_RejectedOutsideRecording(t *testing.T) {
	t.Parallel()

	f := newRecordingFixture(t, &fakeGraderService{grade: model.GradeResult{Rating: 5, Feedback: "ok"}})
	id := f.start(t)
	f.push(t, id, longAnswer, true)
	if _, err := f.svc.StopRecording(id); err != nil {
		t.Fatalf("StopRecording: %v", err)
	}
	f.waitForState(t, id, service.StateEvaluated)

	_, err := f.svc.PushFragment(id, transcript.Fragment{Text: "late", Final: true, ReceivedAt: time.Now()})
	if err != service.ErrNotRecording {
		t.Errorf("PushFragment after stop: err=%v, want ErrNotRecording", err)
	}

	if _, err := f.svc.PushFragment("no-such-session", transcript.Fragment{Text: "x", Final: true}); err != service.ErrSessionNotFound {
		t.Errorf("PushFragment on unknown session: err=%v, want ErrSessionNotFound", err)
	}
}

func TestEvaluate_GraderErrorStillSurfacesFallbackGrade(t *testing.T) {
	t.Parallel()

	f := newRecordingFixture(t, &fakeGraderService{
		grade: model.GradeResult{Rating: 0, Feedback: service.FallbackFeedback},
		err:   gormNotFound{},
	})
	id := f.start(t)
	f.push(t, id, longAnswer, true)
	if _, err := f.svc.StopRecording(id); err != nil {
		t.Fatalf("StopRecording: %v", err)
	}

	sess := f.waitForState(t, id, service.StateEvaluated)
	if sess.Grade == nil || sess.Grade.Feedback != service.FallbackFeedback {
		t.Fatalf("Grade=%+v, want fallback", sess.Grade)
	}
	if !hasNotice(sess, "error", "An error occurred while generating feedback.") {
		t.Errorf("missing error notice, got %+v", sess.Notices)
	}
}
