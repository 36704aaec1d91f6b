// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"time"

	"globalhub_backend/internal/feature/auth/domain/entity"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// DefaultSessionTTL はセッションのデフォルト有効期間です。
	DefaultSessionTTL = 7 * 24 * time.Hour
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrDuplicateAccountを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Update は既存ユーザーのプロフィールを保存します。
	// メールアドレスが他ユーザーと重複する場合、ErrDuplicateAccountを返します。
	Update(ctx context.Context, user *entity.User) error
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーとセッションの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email, sessionID string) (string, error)
}

// ProfileUpdate はプロフィール更新の部分フィールドを保持します。
// nilのフィールドは「変更なし」を意味します。
type ProfileUpdate struct {
	Email          *string
	FirstName      *string
	LastName       *string
	Campus         *string
	Major          *string
	GraduationYear *string
	PhoneNumber    *string
	Bio            *string
}

// authUsecase は認証・セッション管理のビジネスロジックを実装します。
type authUsecase struct {
	users        UserRepository
	sessions     SessionRepository
	jwtGenerator JWTGenerator
	sessionTTL   time.Duration
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, sessions SessionRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		sessions:     sessions,
		jwtGenerator: jwtGenerator,
		sessionTTL:   DefaultSessionTTL,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録し、セッションを開始します。
// メールアドレスが既に登録済みの場合、ErrDuplicateAccountを返し、認証情報は変更されません。
func (u *authUsecase) Register(ctx context.Context, email, password, firstName, lastName string) (*entity.User, string, error) {
	// パスワード強度を検証
	if err := validatePassword(password); err != nil {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	// プロフィールは未完了状態で作成される（campus等は後から設定）
	user := &entity.User{
		Email:     email,
		Password:  string(hashed),
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.openSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login はユーザーを認証し、成功時にプロフィールとJWTトークンを返します。
// 保存済みプロフィールを常に再取得します。合成された最小プロフィールで
// 既存データを上書きすることはありません。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	// メールアドレスでユーザーを検索
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.openSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout はアクティブセッションのみを削除します。
// アカウントとプロフィールデータは保持されます。冪等な操作です。
func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return u.sessions.Delete(ctx, sessionID)
}

// CurrentUser はアクティブセッションに紐づくユーザーを返します。
// セッションが存在しない場合、ErrNoActiveSessionを返します。
func (u *authUsecase) CurrentUser(ctx context.Context, sessionID string) (*entity.User, error) {
	session, err := u.requireSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return u.users.FindByID(ctx, session.UserID)
}

// UpdateProfile は指定されたフィールドを既存プロフィールにマージして保存します。
// ProfileCompleteは毎回再計算されます。セッションがない場合、ErrNoActiveSessionを返します。
func (u *authUsecase) UpdateProfile(ctx context.Context, sessionID string, update ProfileUpdate) (*entity.User, error) {
	session, err := u.requireSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	// nil以外のフィールドのみ上書き（IDとCreatedAtは不変）
	applyString(&user.Email, update.Email)
	applyString(&user.FirstName, update.FirstName)
	applyString(&user.LastName, update.LastName)
	applyString(&user.Campus, update.Campus)
	applyString(&user.Major, update.Major)
	applyString(&user.GraduationYear, update.GraduationYear)
	applyString(&user.PhoneNumber, update.PhoneNumber)
	applyString(&user.Bio, update.Bio)

	user.RecomputeProfileComplete()

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// openSession は新しいセッションを作成し、署名済みJWTトークンを返します。
func (u *authUsecase) openSession(ctx context.Context, user *entity.User) (string, error) {
	now := time.Now()
	session := &entity.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email, session.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// requireSession はセッションを取得し、存在しない・期限切れの場合にErrNoActiveSessionを返します。
func (u *authUsecase) requireSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	if sessionID == "" {
		return nil, ErrNoActiveSession
	}
	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if err == ErrSessionNotFound {
			return nil, ErrNoActiveSession
		}
		return nil, err
	}
	if session.IsExpired() {
		return nil, ErrNoActiveSession
	}
	return session, nil
}

// applyString はsrcがnilでない場合のみdstを上書きします。
func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
