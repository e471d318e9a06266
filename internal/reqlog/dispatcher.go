package reqlog

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Dispatcher desacopla a gravação do log do caminho da requisição:
// o handler nunca espera o store, e falha de log nunca derruba a
// resposta.
type Dispatcher struct {
	store Store
	queue chan Entry
}

func NewDispatcher(store Store) *Dispatcher {
	d := &Dispatcher{
		store: store,
		queue: make(chan Entry, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for e := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.store.Save(ctx, e); err != nil {
			log.Warn().Err(err).Msg("request log write failed, dropping entry")
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(e Entry) {
	select {
	case d.queue <- e:
	default:
		// fila cheia → descartamos o registro, nunca a requisição
		log.Warn().Msg("request log queue full, dropping entry")
	}
}

// Middleware registra método, URL, status e horário de cada requisição
// depois que o handler respondeu.
func (d *Dispatcher) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		d.Dispatch(Entry{
			Method:    c.Request.Method,
			URL:       c.Request.URL.RequestURI(),
			Status:    c.Writer.Status(),
			Timestamp: time.Now(),
		})
	}
}
