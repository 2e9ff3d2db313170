package events

import (
	"context"
	"slices"

	"github.com/yaklabco/goeditev/internal/logging"
	"github.com/yaklabco/goeditev/pkg/config"
)

// Extension identifies one editor extension. The event layer treats
// extensions as opaque beyond their name and their optional
// HandlerSource capability.
type Extension interface {
	// Name returns the extension's stable identity, used as the owner
	// of any registrations it sources.
	Name() string
}

// HandlerSource is the optional capability through which an extension
// exposes event handlers. The dispatch core queries each extension for
// this capability at initialization rather than relying on duck-typed
// optional methods.
type HandlerSource interface {
	Extension

	// EventHandlers returns the extension's handler descriptor.
	EventHandlers() HandlerSet
}

// HandlerSet is the typed descriptor an extension declares its event
// handlers with.
type HandlerSet struct {
	// Handlers maps each sourced event kind to its handler.
	Handlers map[Kind]Handler

	// Priority orders this extension's handlers against other
	// registrations; lower runs first.
	Priority int

	// Exclude lists kinds the extension has opted out of, even when
	// Handlers carries an entry for them.
	Exclude []Kind
}

// AttachExtensions enumerates extensions and auto-registers the event
// handlers they expose through the HandlerSource capability. Kinds an
// extension excluded, and kinds disabled in the options, are skipped;
// when options disable auto-handlers entirely, nothing is registered.
// Handlers of one extension register in sorted kind order so ties at
// equal priority stay deterministic. Registration traces go to the
// logger attached to ctx, or the default logger. Returns the number of
// handlers registered.
func AttachExtensions(ctx context.Context, registry *Registry, extensions []Extension, opts *config.Options) int {
	logger := logging.FromContext(ctx)
	if opts == nil {
		opts = config.Default()
	}
	if opts.AutoHandlers.Disabled {
		logger.Debug("auto-registration of extension handlers disabled")
		return 0
	}

	disabled := make(map[Kind]bool, len(opts.AutoHandlers.DisabledKinds))
	for _, name := range opts.AutoHandlers.DisabledKinds {
		disabled[Kind(name)] = true
	}

	attached := 0
	for _, ext := range extensions {
		source, ok := ext.(HandlerSource)
		if !ok {
			continue
		}
		set := source.EventHandlers()

		kinds := make([]Kind, 0, len(set.Handlers))
		for kind := range set.Handlers {
			kinds = append(kinds, kind)
		}
		slices.Sort(kinds)

		for _, kind := range kinds {
			if disabled[kind] || slices.Contains(set.Exclude, kind) {
				continue
			}
			registry.RegisterOwned(kind, set.Priority, set.Handlers[kind], ext.Name())
			attached++
		}
	}

	logger.Debug("attached extension event handlers",
		logging.FieldHandlers, attached,
	)
	return attached
}
