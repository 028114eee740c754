package forms

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cbcberry/berrysite/internal/mail"
	"github.com/cbcberry/berrysite/internal/visitor"
)

// Service validates, records and relays submissions.
type Service struct {
	store     *Store
	composer  *mail.Composer
	mailer    mail.Mailer
	locator   visitor.Locator
	logger    *zap.Logger
	maxResume int64
	now       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLocator enables IP geolocation for contact notifications.
func WithLocator(l visitor.Locator) Option {
	return func(s *Service) { s.locator = l }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithMaxResume sets the resume upload limit in bytes.
func WithMaxResume(n int64) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxResume = n
		}
	}
}

// WithNow overrides the clock used for submissions without a timestamp.
func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service. store may be nil, in which case submissions
// are relayed but not recorded.
func NewService(store *Store, composer *mail.Composer, mailer mail.Mailer, opts ...Option) *Service {
	s := &Service{
		store:     store,
		composer:  composer,
		mailer:    mailer,
		logger:    zap.NewNop(),
		maxResume: DefaultMaxResume,
		now:       time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// MaxResume returns the resume upload limit in bytes.
func (s *Service) MaxResume() int64 { return s.maxResume }

// SubmitContact relays a contact form submission.
func (s *Service) SubmitContact(ctx context.Context, req ContactRequest, info visitor.Info) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	submitted := parseTimestamp(req.Timestamp, s.now())
	if s.locator != nil && info.Location == nil {
		loc, err := s.locator.Locate(ctx, info.IP)
		if err != nil {
			s.logger.Debug("location lookup failed", zap.String("ip", info.IP), zap.Error(err))
		}
		info.Location = loc
	}

	sub := &Submission{
		Kind:        KindContact,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Region:      req.Region,
		Message:     req.Message,
		Source:      req.Source,
		ClientIP:    info.IP,
		UserAgent:   info.UserAgent,
		Referrer:    info.Referrer,
		SubmittedAt: submitted,
	}
	s.record(ctx, sub)

	msg, err := s.composer.Contact(mail.ContactNotice{
		Name:        req.Name,
		Email:       req.Email,
		Company:     req.Company,
		Phone:       req.Phone,
		Region:      req.Region,
		Message:     req.Message,
		Source:      req.Source,
		SubmittedAt: submitted,
		Visitor:     info,
	})
	if err == nil {
		err = s.mailer.Send(ctx, msg)
	}
	return sub.ID, s.finish(ctx, sub, err)
}

// SubmitApplication relays a job application and confirms receipt to the
// applicant.
func (s *Service) SubmitApplication(ctx context.Context, req ApplicationRequest, info visitor.Info) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if req.ResumeName != "" {
		if err := checkResume(req.ResumeName, int64(len(req.Resume)), req.Resume, s.maxResume); err != nil {
			return "", err
		}
		req.ResumeName = SanitizeFilename(req.ResumeName)
	}

	submitted := parseTimestamp(req.Timestamp, s.now())
	sub := &Submission{
		Kind:           KindApplication,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Position:       req.Position,
		Message:        req.Message,
		Source:         mail.CareersSource,
		AttachmentName: req.ResumeName,
		ClientIP:       info.IP,
		UserAgent:      info.UserAgent,
		Referrer:       info.Referrer,
		SubmittedAt:    submitted,
	}
	s.record(ctx, sub)

	notice := mail.ApplicationNotice{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Position:    req.Position,
		Message:     req.Message,
		ResumeName:  req.ResumeName,
		Resume:      req.Resume,
		SubmittedAt: submitted,
		IP:          info.IP,
	}
	return sub.ID, s.finish(ctx, sub, s.sendApplication(ctx, notice))
}

func (s *Service) sendApplication(ctx context.Context, n mail.ApplicationNotice) error {
	internal, err := s.composer.Application(n)
	if err != nil {
		return err
	}
	if err := s.mailer.Send(ctx, internal); err != nil {
		return fmt.Errorf("application notice: %w", err)
	}
	confirm, err := s.composer.Confirmation(n)
	if err != nil {
		return err
	}
	if err := s.mailer.Send(ctx, confirm); err != nil {
		return fmt.Errorf("applicant confirmation: %w", err)
	}
	return nil
}

// record stores sub. Storage problems are logged and do not block delivery.
func (s *Service) record(ctx context.Context, sub *Submission) {
	if s.store == nil {
		return
	}
	if err := s.store.Create(ctx, sub); err != nil {
		s.logger.Error("recording submission", zap.String("kind", string(sub.Kind)), zap.Error(err))
	}
}

// finish records the delivery outcome and returns sendErr wrapped.
func (s *Service) finish(ctx context.Context, sub *Submission, sendErr error) error {
	status, msg := StatusDelivered, ""
	if sendErr != nil {
		status, msg = StatusFailed, sendErr.Error()
	}
	if s.store != nil && sub.ID != "" {
		if err := s.store.SetStatus(ctx, sub.ID, status, msg); err != nil {
			s.logger.Warn("updating submission status", zap.String("id", sub.ID), zap.Error(err))
		}
	}
	if sendErr != nil {
		s.logger.Error("delivering submission",
			zap.String("id", sub.ID),
			zap.String("kind", string(sub.Kind)),
			zap.Error(sendErr),
		)
		return fmt.Errorf("delivering %s: %w", sub.Kind, sendErr)
	}
	s.logger.Info("submission delivered", zap.String("id", sub.ID), zap.String("kind", string(sub.Kind)))
	return nil
}
