// Package usecase はoutreachフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"globalhub_backend/internal/shared/ratelimiter"
)

const (
	// OutreachPromptTemplate は卒業生へのコンタクト文生成用プロンプトです。
	OutreachPromptTemplate = `Generate a professional, warm, and concise outreach message for a student to send to an alumni mentor named %s who works as a %s at %s. The student wants to ask about their experience and potentially a referral. Use a friendly "MSU student to MSU alumni" tone.`

	// MaxFieldLength は入力フィールドの最大文字数（rune数）です。
	MaxFieldLength = 100
)

// MessageGenerator は文章生成を抽象化するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MessageGenerator interface {
	// Generate はプロンプトからメッセージを生成します。
	Generate(ctx context.Context, prompt string) (string, error)
}

// outreachUsecase は卒業生向けコンタクト文生成のビジネスロジックを提供します。
// 生成に失敗した場合は定型文にフォールバックし、ユーザーフローを止めません。
type outreachUsecase struct {
	generator MessageGenerator
	limiter   ratelimiter.RateLimiterInterface
}

// NewOutreachUsecase はoutreachUsecaseの新しいインスタンスを生成します。
func NewOutreachUsecase(generator MessageGenerator, limiter ratelimiter.RateLimiterInterface) *outreachUsecase {
	return &outreachUsecase{generator: generator, limiter: limiter}
}

// validateField は入力フィールドの長さをチェックします。
func validateField(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", name)
	}
	if utf8.RuneCountInString(value) > MaxFieldLength {
		return fmt.Errorf("%s exceeds maximum of %d characters", name, MaxFieldLength)
	}
	return nil
}

// GenerateMessage は指定された卒業生向けのコンタクト文を生成します。
// 生成器が利用不可またはエラーの場合、定型テンプレートを返します（エラーにはなりません）。
func (u *outreachUsecase) GenerateMessage(ctx context.Context, alumniName, role, company string) (string, error) {
	for name, value := range map[string]string{
		"alumniName": alumniName,
		"role":       role,
		"company":    company,
	} {
		if err := validateField(name, value); err != nil {
			return "", err
		}
	}

	if u.generator == nil {
		return fallbackMessage(alumniName, company), nil
	}

	if u.limiter != nil {
		u.limiter.WaitIfNeeded()
	}

	prompt := fmt.Sprintf(OutreachPromptTemplate, alumniName, role, company)
	message, err := u.generator.Generate(ctx, prompt)
	if err != nil || message == "" {
		// 一時的な生成失敗は定型文に縮退させる
		slog.Warn("outreach generation failed, using fallback", "error", err)
		return fallbackMessage(alumniName, company), nil
	}
	return message, nil
}

// fallbackMessage は生成失敗時の定型文を返します。
func fallbackMessage(alumniName, company string) string {
	return fmt.Sprintf("Hi %s, I'm a student at MSU and noticed your role at %s. I'm very interested in this field and was wondering if you might have 10 minutes to chat about your experience? Thanks!", alumniName, company)
}
