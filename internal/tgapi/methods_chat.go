package tgapi

import (
	"context"
	"strconv"

	"github.com/central-university-dev/go-tgbot/internal/domain/models"
)

func (c *Client) GetChat(ctx context.Context, chatID models.ChatID) (models.Chat, error) {
	return callInto[models.Chat](ctx, c, "getChat", NewParams().ChatID("chat_id", chatID))
}

func (c *Client) GetChatAdministrators(ctx context.Context, chatID models.ChatID) ([]models.ChatMember, error) {
	return callInto[[]models.ChatMember](ctx, c, "getChatAdministrators", NewParams().ChatID("chat_id", chatID))
}

func (c *Client) GetChatMembersCount(ctx context.Context, chatID models.ChatID) (int, error) {
	return callInto[int](ctx, c, "getChatMembersCount", NewParams().ChatID("chat_id", chatID))
}

func (c *Client) GetChatMember(ctx context.Context, chatID models.ChatID, userID int64) (models.ChatMember, error) {
	p := NewParams().
		ChatID("chat_id", chatID).
		Int64("user_id", userID)

	return callInto[models.ChatMember](ctx, c, "getChatMember", p)
}

// KickChatMember блокирует пользователя. untilDate == nil означает бессрочную блокировку.
func (c *Client) KickChatMember(ctx context.Context, chatID models.ChatID, userID int64, untilDate *int64) (bool, error) {
	p := NewParams().
		ChatID("chat_id", chatID).
		Int64("user_id", userID).
		OptInt64("until_date", untilDate)

	return callInto[bool](ctx, c, "kickChatMember", p)
}

func (c *Client) UnbanChatMember(ctx context.Context, chatID models.ChatID, userID int64) (bool, error) {
	p := NewParams().
		ChatID("chat_id", chatID).
		Int64("user_id", userID)

	return callInto[bool](ctx, c, "unbanChatMember", p)
}

// flag передаёт и true, и false: для прав отсутствие параметра не равно false.
func (p *Params) flag(name string, value bool) *Params {
	return p.Raw(name, strconv.FormatBool(value))
}

type RestrictConfig struct {
	ChatID      models.ChatID
	UserID      int64
	Permissions models.RestrictPermissions
	UntilDate   *int64
}

func (c *Client) RestrictChatMember(ctx context.Context, cfg RestrictConfig) (bool, error) {
	p := NewParams().
		ChatID("chat_id", cfg.ChatID).
		Int64("user_id", cfg.UserID).
		flag("can_send_messages", cfg.Permissions.CanSendMessages).
		flag("can_send_media_messages", cfg.Permissions.CanSendMediaMessages).
		flag("can_send_other_messages", cfg.Permissions.CanSendOtherMessages).
		flag("can_add_web_page_previews", cfg.Permissions.CanAddWebPagePreviews).
		OptInt64("until_date", cfg.UntilDate)

	return callInto[bool](ctx, c, "restrictChatMember", p)
}

type PromoteConfig struct {
	ChatID      models.ChatID
	UserID      int64
	Permissions models.PromotePermissions
}

func (c *Client) PromoteChatMember(ctx context.Context, cfg PromoteConfig) (bool, error) {
	perms := cfg.Permissions

	p := NewParams().
		ChatID("chat_id", cfg.ChatID).
		Int64("user_id", cfg.UserID).
		flag("can_change_info", perms.CanChangeInfo).
		flag("can_post_messages", perms.CanPostMessages).
		flag("can_edit_messages", perms.CanEditMessages).
		flag("can_delete_messages", perms.CanDeleteMessages).
		flag("can_invite_users", perms.CanInviteUsers).
		flag("can_restrict_members", perms.CanRestrictMembers).
		flag("can_pin_messages", perms.CanPinMessages).
		flag("can_promote_members", perms.CanPromoteMembers)

	return callInto[bool](ctx, c, "promoteChatMember", p)
}

func (c *Client) ExportChatInviteLink(ctx context.Context, chatID models.ChatID) (string, error) {
	return callInto[string](ctx, c, "exportChatInviteLink", NewParams().ChatID("chat_id", chatID))
}

func (c *Client) SetChatPhoto(ctx context.Context, chatID models.ChatID, photo models.InputFile) (bool, error) {
	p := NewParams().
		ChatID("chat_id", chatID).
		File("photo", photo)

	return callInto[bool](ctx, c, "setChatPhoto", p)
}

func (c *Client) DeleteChatPhoto(ctx context.Context, chatID models.ChatID) (bool, error) {
	return callInto[bool](ctx, c, "deleteChatPhoto", NewParams().ChatID("chat_id", chatID))
}

func (c *Client) SetChatTitle(ctx context.Context, chatID models.ChatID, title string) (bool, error) {
	p := NewParams().
		ChatID("chat_id", chatID).
		RequiredString("title", title)

	return callInto[bool](ctx, c, "setChatTitle", p)
}

func (c *Client) SetChatDescription(ctx context.Context, chatID models.ChatID, description string) (bool, error) {
	p := NewParams().
		ChatID("chat_id", chatID).
		String("description", description)

	return callInto[bool](ctx, c, "setChatDescription", p)
}

func (c *Client) PinChatMessage(
	ctx context.Context,
	chatID models.ChatID,
	messageID int64,
	disableNotification bool,
) (bool, error) {
	p := NewParams().
		ChatID("chat_id", chatID).
		Int64("message_id", messageID).
		Bool("disable_notification", disableNotification)

	return callInto[bool](ctx, c, "pinChatMessage", p)
}

func (c *Client) UnpinChatMessage(ctx context.Context, chatID models.ChatID) (bool, error) {
	return callInto[bool](ctx, c, "unpinChatMessage", NewParams().ChatID("chat_id", chatID))
}

func (c *Client) LeaveChat(ctx context.Context, chatID models.ChatID) (bool, error) {
	return callInto[bool](ctx, c, "leaveChat", NewParams().ChatID("chat_id", chatID))
}

func (c *Client) SetChatStickerSet(ctx context.Context, chatID models.ChatID, stickerSetName string) (bool, error) {
	p := NewParams().
		ChatID("chat_id", chatID).
		RequiredString("sticker_set_name", stickerSetName)

	return callInto[bool](ctx, c, "setChatStickerSet", p)
}

func (c *Client) DeleteChatStickerSet(ctx context.Context, chatID models.ChatID) (bool, error) {
	return callInto[bool](ctx, c, "deleteChatStickerSet", NewParams().ChatID("chat_id", chatID))
}

func (c *Client) GetUserProfilePhotos(
	ctx context.Context,
	userID int64,
	offset, limit *int,
) (models.UserProfilePhotos, error) {
	p := NewParams().
		Int64("user_id", userID).
		OptInt("offset", offset).
		OptInt("limit", limit)

	return callInto[models.UserProfilePhotos](ctx, c, "getUserProfilePhotos", p)
}

func (c *Client) GetFile(ctx context.Context, fileID string) (models.File, error) {
	return callInto[models.File](ctx, c, "getFile", NewParams().RequiredString("file_id", fileID))
}
