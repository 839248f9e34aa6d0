package canvas

// chatStyles is embedded ahead of the html window. Class names match the
// markup produced by HTMLRenderer.
const chatStyles = `<style>
.chat-container { max-width: 600px; margin: 0 auto; border: 1px solid #d1d9e0; border-radius: 8px; background: #ffffff; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Helvetica, Arial, sans-serif; }
.chat-header { background: #f6f8fa; border-bottom: 1px solid #d1d9e0; padding: 12px 16px; border-radius: 8px 8px 0 0; }
.window-controls { display: inline-flex; gap: 6px; margin-right: 12px; align-items: center; }
.window-control { width: 12px; height: 12px; border-radius: 50%; display: inline-block; }
.control-close { background: #ff5f57; }
.control-minimize { background: #ffbd2e; }
.control-maximize { background: #28ca42; }
.header-title { font-weight: 600; color: #24292f; display: inline; }
.header-meta { font-size: 12px; color: #656d76; margin-top: 4px; }
.chat-messages { padding: 16px; }
.message { margin-bottom: 16px; }
.message:last-child { margin-bottom: 0; }
.message.owner { text-align: right; }
.message-header { margin-bottom: 4px; }
.username { font-weight: 600; color: #0969da; font-size: 14px; text-decoration: none; }
.username.owner { color: #8250df; }
.timestamp { font-size: 12px; color: #656d76; margin-left: 8px; }
.message-content { display: inline-block; text-align: left; background: #f6f8fa; padding: 8px 12px; border-radius: 8px; border-left: 3px solid #d1d9e0; line-height: 1.4; color: #24292f; font-family: ui-monospace, SFMono-Regular, Menlo, monospace; }
.message.owner .message-content { background: #dbeafe; border-left-color: #0969da; }
.reactions { margin-top: 4px; font-size: 12px; }
.reaction { border: 1px solid #d1d9e0; border-radius: 12px; padding: 0 6px; margin-right: 4px; }
.empty-state { text-align: center; padding: 32px 16px; color: #656d76; }
.chat-footer { background: #f6f8fa; border-top: 1px solid #d1d9e0; padding: 12px 16px; border-radius: 0 0 8px 8px; text-align: center; font-size: 14px; color: #656d76; }
.join-link { color: #0969da; text-decoration: none; font-weight: 500; }
@media (prefers-color-scheme: dark) {
  .chat-container { background: #0d1117; border-color: #30363d; }
  .chat-header, .chat-footer { background: #161b22; border-color: #30363d; color: #8b949e; }
  .header-title { color: #f0f6fc; }
  .message-content { background: #161b22; border-left-color: #30363d; color: #f0f6fc; }
  .message.owner .message-content { background: #0c2d6b; border-left-color: #1f6feb; }
  .username { color: #58a6ff; }
  .username.owner { color: #a5a3ff; }
}
</style>`
