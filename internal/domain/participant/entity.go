package participant

import "strings"

// Role は参加者の役割を表す
type Role string

const (
	RoleOrganisateur Role = "ORGANISATEUR"
	RoleInvite       Role = "INVITE"
	RoleServeur      Role = "SERVEUR"
	RoleAnimateur    Role = "ANIMATEUR"
)

// ParseRole は文字列から役割を取得する（大文字小文字は区別しない）
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// IsValid は定義済みの役割かを返す
func (r Role) IsValid() bool {
	switch r {
	case RoleOrganisateur, RoleInvite, RoleServeur, RoleAnimateur:
		return true
	}
	return false
}

// Participant は参加者エンティティを表す
// 参加しているイベントは保持しない。イベント側の関連レコードから引く。
type Participant struct {
	ID      int64
	Name    string
	Surname string
	Role    Role
}

// NewParticipant は新しい参加者を作成する
func NewParticipant(name, surname string, role Role) *Participant {
	return &Participant{
		Name:    name,
		Surname: surname,
		Role:    role,
	}
}

// Validate は参加者の検証を行う
func (p *Participant) Validate() error {
	if !p.Role.IsValid() {
		return ErrInvalidRole
	}
	return nil
}

// Matches は姓・名・役割がすべて一致するかを返す
func (p *Participant) Matches(surname, name string, role Role) bool {
	return p.Surname == surname && p.Name == name && p.Role == role
}
