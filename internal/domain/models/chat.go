package models

import (
	"strconv"
)

type ChatType string

const (
	ChatPrivate    ChatType = "private"
	ChatGroup      ChatType = "group"
	ChatSupergroup ChatType = "supergroup"
	ChatChannel    ChatType = "channel"
)

type Chat struct {
	ID                          int64      `json:"id"`
	Type                        ChatType   `json:"type"`
	Title                       string     `json:"title,omitempty"`
	Username                    string     `json:"username,omitempty"`
	FirstName                   string     `json:"first_name,omitempty"`
	LastName                    string     `json:"last_name,omitempty"`
	AllMembersAreAdministrators bool       `json:"all_members_are_administrators,omitempty"`
	Photo                       *ChatPhoto `json:"photo,omitempty"`
	Description                 string     `json:"description,omitempty"`
	InviteLink                  string     `json:"invite_link,omitempty"`
	PinnedMessage               *Message   `json:"pinned_message,omitempty"`
	StickerSetName              string     `json:"sticker_set_name,omitempty"`
	CanSetStickerSet            bool       `json:"can_set_sticker_set,omitempty"`
}

type ChatPhoto struct {
	SmallFileID string `json:"small_file_id"`
	BigFileID   string `json:"big_file_id"`
}

type ChatMemberStatus string

const (
	MemberCreator       ChatMemberStatus = "creator"
	MemberAdministrator ChatMemberStatus = "administrator"
	MemberMember        ChatMemberStatus = "member"
	MemberRestricted    ChatMemberStatus = "restricted"
	MemberLeft          ChatMemberStatus = "left"
	MemberKicked        ChatMemberStatus = "kicked"
)

type ChatMember struct {
	User                  User             `json:"user"`
	Status                ChatMemberStatus `json:"status"`
	UntilDate             int64            `json:"until_date,omitempty"`
	CanBeEdited           bool             `json:"can_be_edited,omitempty"`
	CanChangeInfo         bool             `json:"can_change_info,omitempty"`
	CanPostMessages       bool             `json:"can_post_messages,omitempty"`
	CanEditMessages       bool             `json:"can_edit_messages,omitempty"`
	CanDeleteMessages     bool             `json:"can_delete_messages,omitempty"`
	CanInviteUsers        bool             `json:"can_invite_users,omitempty"`
	CanRestrictMembers    bool             `json:"can_restrict_members,omitempty"`
	CanPinMessages        bool             `json:"can_pin_messages,omitempty"`
	CanPromoteMembers     bool             `json:"can_promote_members,omitempty"`
	CanSendMessages       bool             `json:"can_send_messages,omitempty"`
	CanSendMediaMessages  bool             `json:"can_send_media_messages,omitempty"`
	CanSendOtherMessages  bool             `json:"can_send_other_messages,omitempty"`
	CanAddWebPagePreviews bool             `json:"can_add_web_page_previews,omitempty"`
}

// ChatID адресует чат по числовому идентификатору или по @username канала.
type ChatID struct {
	ID       int64
	Username string
}

func ChatByID(id int64) ChatID {
	return ChatID{ID: id}
}

func ChatByUsername(username string) ChatID {
	if username != "" && username[0] != '@' {
		username = "@" + username
	}

	return ChatID{Username: username}
}

func (c ChatID) String() string {
	if c.Username != "" {
		return c.Username
	}

	return strconv.FormatInt(c.ID, 10)
}

func (c ChatID) IsZero() bool {
	return c.ID == 0 && c.Username == ""
}

// MessageTarget указывает на сообщение либо парой (чат, id), либо inline_message_id.
type MessageTarget struct {
	ChatID          ChatID
	MessageID       int64
	InlineMessageID string
}

func InChat(chatID ChatID, messageID int64) MessageTarget {
	return MessageTarget{ChatID: chatID, MessageID: messageID}
}

func Inline(inlineMessageID string) MessageTarget {
	return MessageTarget{InlineMessageID: inlineMessageID}
}

func (t MessageTarget) IsInline() bool {
	return t.InlineMessageID != ""
}

// RestrictPermissions передаётся в restrictChatMember.
type RestrictPermissions struct {
	CanSendMessages       bool
	CanSendMediaMessages  bool
	CanSendOtherMessages  bool
	CanAddWebPagePreviews bool
}

// PromotePermissions передаётся в promoteChatMember. Все флаги отправляются явно.
type PromotePermissions struct {
	CanChangeInfo      bool
	CanPostMessages    bool
	CanEditMessages    bool
	CanDeleteMessages  bool
	CanInviteUsers     bool
	CanRestrictMembers bool
	CanPinMessages     bool
	CanPromoteMembers  bool
}
