package discord

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/matchqueue/internal/models"
	"github.com/KirkDiggler/matchqueue/internal/services/queue"
)

// describeError maps engine errors to the message shown to the user.
// Each failure gets its own text so the user knows what to do next.
func describeError(err error) string {
	var qErr queue.QueueError
	if !errors.As(err, &qErr) {
		return "❌ Algo deu errado. Tente novamente em instantes."
	}

	switch qErr {
	case queue.ErrPanelNotFound:
		return "⚠️ Não há painel neste canal."
	case queue.ErrQueueNotFound:
		return "⚠️ Fila desse mapa não existe."
	case queue.ErrAlreadyJoined:
		return "⚠️ Você já está nessa fila."
	case queue.ErrNotInQueue:
		return "⚠️ Você não está nessa fila."
	case queue.ErrQueueFull:
		return "❌ Essa fila já está cheia."
	case queue.ErrInvalidCapacity:
		return capacityMessage(0)
	case queue.ErrPermissionDenied:
		return "❌ Você não tem permissão para isso."
	case queue.ErrNoModes:
		return "❌ Forneça ao menos 1 modo."
	case queue.ErrInvalidPrice:
		return "❌ O valor não pode ser negativo."
	case queue.ErrUnknownCategory:
		return "❌ Jogo desconhecido. Use stumble ou valorant."
	case queue.ErrStoreIO:
		return "❌ Não foi possível salvar os dados. Tente novamente."
	case queue.ErrInvalidInput:
		return fmt.Sprintf("❌ Dados inválidos. Cada modo precisa de um nome com até %d caracteres, no máximo %d modos por painel.",
			maxLabelLength, maxSelectors)
	default:
		return "❌ Algo deu errado. Tente novamente em instantes."
	}
}

// capacityMessage explains the accepted max_pessoas range; maxCapacity <= 0 means no upper bound
func capacityMessage(maxCapacity int) string {
	if maxCapacity <= 0 {
		return fmt.Sprintf("❌ max_pessoas deve ser pelo menos %d e não menor que o número de inscritos na fila.",
			models.MinCapacity)
	}
	return fmt.Sprintf("❌ max_pessoas deve ser entre %d e %d e não menor que o número de inscritos na fila.",
		models.MinCapacity, maxCapacity)
}
