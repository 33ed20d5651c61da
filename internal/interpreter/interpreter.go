// Package interpreter turns free text into device actions. It is a
// rule-based matcher over a fixed vocabulary, resolving "it"/"this"/"that"
// against the previous conversation turn and deferring time-qualified
// commands to the scheduler.
package interpreter

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"homehub/internal/conversation"
	"homehub/internal/device"
	"homehub/internal/domain"
	"homehub/internal/scheduler"
)

var (
	pronounCommandRe = regexp.MustCompile(`(?i)\bturn\s+(it|this|that)\s+(on|off)\b`)
	actionRe         = regexp.MustCompile(`(?i)\b(turn|switch)\s+(on|off)\b`)
	timeRe           = regexp.MustCompile(`(?i)\bat\s+(\d{1,2}(?::\d{2})?\s*(?:am|pm)?)\b`)
)

// Result is what every interpretation produces. Applied reports whether the
// command changed state (toggled a device or created a schedule entry);
// clarifications, help, and failures leave everything untouched.
type Result struct {
	Message string
	Intent  domain.Intent
	Applied bool
}

type Interpreter struct {
	registry  *device.Registry
	history   *conversation.Log
	scheduler *scheduler.Scheduler
	logger    *slog.Logger
	now       func() time.Time
}

func New(
	registry *device.Registry,
	history *conversation.Log,
	sched *scheduler.Scheduler,
	logger *slog.Logger,
) *Interpreter {
	return &Interpreter{
		registry:  registry,
		history:   history,
		scheduler: sched,
		logger:    logger,
		now:       time.Now,
	}
}

// Interpret classifies one command. Rules apply in priority order: a
// schedulable command wins over an immediate one, which wins over the
// "did you mean" suggestion, which wins over help; anything else is
// unrecognized. The user turn is logged before interpretation starts so the
// history exists even when interpretation fails.
func (i *Interpreter) Interpret(rawText, userID string) Result {
	i.history.Append(userID, domain.ConversationTurn{Sender: domain.SenderUser, Text: rawText})

	text := i.resolvePronoun(rawText, userID)
	lower := strings.ToLower(text)

	actionMatch := actionRe.FindStringSubmatch(lower)
	deviceID, deviceOK := MatchDevice(lower, i.registry.IDs())
	timeMatch := timeRe.FindStringSubmatch(lower)

	if actionMatch != nil && deviceOK && timeMatch != nil {
		return i.deferred(userID, deviceID, domain.Action(actionMatch[2]), timeMatch[1])
	}

	if actionMatch != nil && deviceOK {
		return i.immediate(userID, deviceID, domain.Action(actionMatch[2]))
	}

	// Informational replies below are not logged as bot turns: they are
	// asides, not part of the device conversation.
	if !deviceOK {
		if suggestion, ok := SuggestDevice(lower, i.registry.IDs()); ok {
			return Result{
				Message: fmt.Sprintf("Did you mean %q? Try again.", suggestion),
				Intent:  domain.Intent{Kind: domain.IntentClarify, Suggestion: suggestion},
			}
		}
	}

	if strings.Contains(lower, "help") || strings.Contains(lower, "what can you do") {
		return Result{
			Message: fmt.Sprintf("I can control these devices: %s. Try saying \"Turn on the fan.\"", i.registry.Summary()),
			Intent:  domain.Intent{Kind: domain.IntentHelp},
		}
	}

	msg := "Sorry, I couldn't understand that command."
	i.history.Append(userID, domain.ConversationTurn{Sender: domain.SenderBot, Text: msg})
	i.logger.Debug("unrecognized command", "user", userID, "text", rawText)

	return Result{Message: msg, Intent: domain.Intent{Kind: domain.IntentUnrecognized}}
}

// resolvePronoun rewrites "turn it off" into "turn off the tv" when the
// previous conversation turn mentions a known device. With no resolvable
// referent the text passes through unchanged and the device match fails
// downstream.
func (i *Interpreter) resolvePronoun(text, userID string) string {
	m := pronounCommandRe.FindStringSubmatch(text)
	if m == nil {
		return text
	}

	prev, ok := i.history.Previous(userID)
	if !ok {
		return text
	}

	deviceID, ok := MatchDevice(prev.Text, i.registry.IDs())
	if !ok {
		return text
	}

	rewritten := pronounCommandRe.ReplaceAllString(text, fmt.Sprintf("turn %s the %s", strings.ToLower(m[2]), deviceID))
	i.logger.Debug("resolved pronoun", "user", userID, "device", deviceID)

	return rewritten
}

func (i *Interpreter) immediate(userID, deviceID string, action domain.Action) Result {
	dev, err := i.registry.SetStatus(deviceID, action)
	if err != nil {
		// The id came from the registry a moment ago; treat a vanished
		// device like any other uninterpretable command.
		i.logger.Warn("matched device disappeared", "device", deviceID, "error", err)
		msg := "Sorry, I couldn't understand that command."
		i.history.Append(userID, domain.ConversationTurn{Sender: domain.SenderBot, Text: msg})
		return Result{Message: msg, Intent: domain.Intent{Kind: domain.IntentUnrecognized}}
	}

	msg := fmt.Sprintf("%s turned %s.", deviceID, dev.Status)
	i.history.Append(userID, domain.ConversationTurn{Sender: domain.SenderBot, Text: msg})
	i.logger.Info("applied command", "user", userID, "device", deviceID, "action", action)

	return Result{
		Message: msg,
		Intent:  domain.Intent{Kind: domain.IntentImmediate, DeviceID: deviceID, Action: action},
		Applied: true,
	}
}

func (i *Interpreter) deferred(userID, deviceID string, action domain.Action, timeExpr string) Result {
	at, err := NormalizeTime(timeExpr)
	if err != nil {
		// timeRe guarantees a normalizable expression; fall back anyway.
		msg := "Sorry, I couldn't understand that command."
		i.history.Append(userID, domain.ConversationTurn{Sender: domain.SenderBot, Text: msg})
		return Result{Message: msg, Intent: domain.Intent{Kind: domain.IntentUnrecognized}}
	}

	entry := domain.ScheduleEntry{
		ID:       domain.NewScheduleID(deviceID, i.now()),
		DeviceID: deviceID,
		Action:   action,
		Time:     at,
	}
	i.scheduler.Add(entry)

	msg := fmt.Sprintf("Okay! I'll turn %s the %s at %s", action, deviceID, at)
	i.history.Append(userID, domain.ConversationTurn{Sender: domain.SenderBot, Text: msg})
	i.logger.Info("scheduled command", "user", userID, "device", deviceID, "action", action, "time", at)

	return Result{
		Message: msg,
		Intent: domain.Intent{
			Kind:       domain.IntentDeferred,
			DeviceID:   deviceID,
			Action:     action,
			Time:       at,
			ScheduleID: entry.ID,
		},
		Applied: true,
	}
}
