package registration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"revobot/bot/common"
	"revobot/domain/entities"
	"revobot/domain/interfaces"
	"revobot/domain/services"

	"github.com/bwmarrin/discordgo"
)

// handleArrival handles the /arrivee command
func (f *Feature) handleArrival(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := common.OptionMap(i.ApplicationCommandData().Options)
	name := common.StringOption(options, "pseudo")

	eventDate, err := entities.ParseEventDate(common.StringOption(options, "date"))
	if err != nil {
		common.HandleError(s, i, validationError(err), false)
		return
	}

	profile, err := entities.ParseArrivalProfile(common.StringOption(options, "profil"))
	if err != nil {
		common.HandleError(s, i, validationError(err), false)
		return
	}

	var arrival *entities.Arrival
	err = f.withRegistration(i, func(ctx context.Context, svc interfaces.RegistrationService, guildID int64) error {
		var err error
		arrival, err = svc.RecordArrival(ctx, guildID, name, eventDate, profile)
		return err
	})
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	common.RespondEphemeral(s, i, ArrivalConfirmation(arrival))
}

// handleCondemnation handles the /condamne command
func (f *Feature) handleCondemnation(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	options := common.OptionMap(data.Options)
	name := common.StringOption(options, "pseudo")

	eventDate, err := entities.ParseEventDate(common.StringOption(options, "date"))
	if err != nil {
		common.HandleError(s, i, validationError(err), false)
		return
	}

	var roleID *int64
	var roleLabel *string
	if opt, ok := options["role_a_restituer"]; ok {
		role := opt.RoleValue(nil, "")
		id, err := common.ParseID(role.ID)
		if err != nil {
			common.HandleError(s, i, common.NewUserError("❌ Rôle invalide.", "failed to parse restore role ID"), false)
			return
		}
		roleID = &id
		// keep the role name so the reminder still reads if the role is deleted
		if data.Resolved != nil {
			if resolved, ok := data.Resolved.Roles[role.ID]; ok && resolved.Name != "" {
				roleLabel = &resolved.Name
			}
		}
	}
	if roleLabel == nil {
		if label := common.StringOption(options, "role_nom"); label != "" {
			roleLabel = &label
		}
	}

	var condemnation *entities.Condemnation
	err = f.withRegistration(i, func(ctx context.Context, svc interfaces.RegistrationService, guildID int64) error {
		var err error
		condemnation, err = svc.RecordCondemnation(ctx, guildID, name, eventDate, roleID, roleLabel)
		return err
	})
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	common.RespondEphemeral(s, i, CondemnationConfirmation(condemnation))
}

// handleAntecedents handles the /antecedents command
func (f *Feature) handleAntecedents(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := common.OptionMap(i.ApplicationCommandData().Options)
	name := common.StringOption(options, "pseudo")

	var count int64
	err := f.withRegistration(i, func(ctx context.Context, svc interfaces.RegistrationService, _ int64) error {
		var err error
		count, err = svc.CountCondemnations(ctx, name)
		return err
	})
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	common.RespondEphemeral(s, i, AntecedentsSummary(name, count))
}

// withRegistration runs fn inside a guild-scoped unit of work and commits on success.
// Domain validation errors come back as user errors; nothing is written for them.
func (f *Feature) withRegistration(i *discordgo.InteractionCreate, fn func(context.Context, interfaces.RegistrationService, int64) error) error {
	guildID, err := common.ParseID(i.GuildID)
	if err != nil {
		return common.NewSystemError(err, "failed to parse guild ID")
	}

	ctx := context.Background()

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return common.NewSystemError(err, "failed to begin transaction")
	}
	defer uow.Rollback()

	registrationService := services.NewRegistrationService(
		uow.ArrivalRepository(),
		uow.CondemnationRepository(),
		uow.EventBus(),
	)

	if err := fn(ctx, registrationService, guildID); err != nil {
		if botErr := validationError(err); botErr != nil {
			return botErr
		}
		return common.NewSystemError(err, "registration command failed")
	}

	if err := uow.Commit(); err != nil {
		return common.NewSystemError(err, "failed to commit transaction")
	}
	return nil
}

// validationError maps domain validation failures to user-facing errors; nil for anything else
func validationError(err error) *common.BotError {
	var message string
	switch {
	case errors.Is(err, entities.ErrInvalidDate):
		message = "❌ Date invalide. Format attendu : JJ/MM/AAAA (ex: 21/10/2025)."
	case errors.Is(err, entities.ErrEmptyDisplayName):
		message = "❌ Le pseudo ne peut pas être vide."
	case errors.Is(err, entities.ErrInvalidProfile):
		message = "❌ Profil invalide. Choisis PVM OPTI, PVM BL, PVP OPTI ou PVP PAS OPTI."
	default:
		return nil
	}
	botErr := common.NewUserError(message, "rejected registration input")
	botErr.Context = err.Error()
	return botErr
}

// ArrivalConfirmation is the reply sent after recording an arrival
func ArrivalConfirmation(arrival *entities.Arrival) string {
	return fmt.Sprintf("✅ Arrivée enregistrée pour **%s** (%s) le %s. Rappel dans %d jours.",
		arrival.DisplayName,
		arrival.Profile.Label(),
		entities.FormatEventDate(arrival.EventDate),
		entities.ReminderDelayDays,
	)
}

// CondemnationConfirmation is the reply sent after recording a condemnation
func CondemnationConfirmation(condemnation *entities.Condemnation) string {
	message := fmt.Sprintf("✅ Condamnation enregistrée pour **%s** (le %s). Rappel dans %d jours.",
		condemnation.DisplayName,
		entities.FormatEventDate(condemnation.EventDate),
		entities.ReminderDelayDays,
	)
	if role := condemnation.RoleDisplay(); role.IsSet() {
		message += " Rôle à restituer : " + role.Render()
	}
	return message
}

// AntecedentsSummary is the reply to /antecedents
func AntecedentsSummary(displayName string, count int64) string {
	displayName = strings.TrimSpace(displayName)
	if count == 0 {
		return fmt.Sprintf("📜 Aucune condamnation enregistrée pour **%s**.", displayName)
	}
	return fmt.Sprintf("📜 **%s** : **%d** condamnation(s) au total.", displayName, count)
}
