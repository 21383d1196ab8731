package store

const (
	upsertConversation = `
		INSERT INTO conversations (
			user_id,
			id,
			title,
			mode,
			is_pinned,
			message_count,
			created_at,
			updated_at,
			cached_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, id) DO UPDATE SET
			title         = excluded.title,
			mode          = excluded.mode,
			is_pinned     = excluded.is_pinned,
			message_count = excluded.message_count,
			created_at    = excluded.created_at,
			updated_at    = excluded.updated_at,
			cached_at     = excluded.cached_at;`

	getAllConversations = `
		SELECT
			id,
			title,
			mode,
			is_pinned,
			message_count,
			created_at,
			updated_at
		FROM conversations
		WHERE user_id = $1
		ORDER BY is_pinned DESC, updated_at DESC;`

	deleteConversation = `
		DELETE FROM conversations
		WHERE user_id = $1 AND id = $2;`

	deleteAllConversations = `
		DELETE FROM conversations
		WHERE user_id = $1;`

	renameConversationID = `
		UPDATE conversations SET id = $1
		WHERE user_id = $2 AND id = $3;`

	reparentMessages = `
		UPDATE messages SET conversation_id = $1
		WHERE user_id = $2 AND conversation_id = $3;`

	reparentActivePointer = `
		UPDATE ui_state SET active_conversation_id = $1
		WHERE user_id = $2 AND active_conversation_id = $3;`

	insertMessage = `
		INSERT INTO messages (
			user_id,
			id,
			conversation_id,
			role,
			content,
			sources,
			seq,
			created_at,
			cached_at
		) VALUES ($1, $2, $3, $4, $5, $6,
			(SELECT COALESCE(MAX(seq) + 1, 0) FROM messages WHERE user_id = $1 AND conversation_id = $3),
			$7, $8);`

	getMessagesForConversation = `
		SELECT
			id,
			conversation_id,
			role,
			content,
			sources,
			created_at
		FROM messages
		WHERE user_id = $1 AND conversation_id = $2
		ORDER BY seq;`

	deleteMessage = `
		DELETE FROM messages
		WHERE user_id = $1 AND id = $2;`

	deleteMessagesForConversation = `
		DELETE FROM messages
		WHERE user_id = $1 AND conversation_id = $2;`

	deleteAllMessages = `
		DELETE FROM messages
		WHERE user_id = $1;`

	upsertFile = `
		INSERT INTO files (
			user_id,
			id,
			filename,
			file_type,
			size_bytes,
			content_hash,
			status,
			created_at,
			cached_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, id) DO UPDATE SET
			filename     = excluded.filename,
			file_type    = excluded.file_type,
			size_bytes   = excluded.size_bytes,
			content_hash = excluded.content_hash,
			status       = excluded.status,
			created_at   = excluded.created_at,
			cached_at    = excluded.cached_at;`

	getAllFiles = `
		SELECT
			id,
			filename,
			file_type,
			size_bytes,
			content_hash,
			status,
			created_at
		FROM files
		WHERE user_id = $1
		ORDER BY created_at DESC;`

	deleteFile = `
		DELETE FROM files
		WHERE user_id = $1 AND id = $2;`

	deleteAllFiles = `
		DELETE FROM files
		WHERE user_id = $1;`

	upsertUIState = `
		INSERT INTO ui_state (user_id, active_conversation_id, files_synced_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			active_conversation_id = excluded.active_conversation_id,
			files_synced_at        = excluded.files_synced_at;`

	getUIState = `
		SELECT active_conversation_id, files_synced_at
		FROM ui_state
		WHERE user_id = $1;`

	deleteUIState = `
		DELETE FROM ui_state
		WHERE user_id = $1;`
)
