// Command mailpreview scans mail preview sources, generates preview
// registration code and runs a development server hosting the preview
// pages.
//
//	mailpreview scan src/Mailer/Preview
//	mailpreview scan --dialect go --format yaml internal/mailer/preview
//	mailpreview gen --dir internal/mailer/preview --import example.com/app/internal/mailer/preview --package main --out previews_gen.go
//	DEBUG=true mailpreview serve
//
// The serve command reads its settings from the environment (and a .env
// file): SERVER_ADDR, DEBUG, MAIL_PREVIEW_CLASS_NAMES, MAIL_PREVIEW_PATH,
// MAIL_PREVIEW_DIALECT, MAIL_PREVIEW_MOUNT_PATH, APP_NAME, APP_ENV and
// LOG_LEVEL.
package main
