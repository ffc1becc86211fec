package api

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/example/manutencao-ar/internal/auth"
	"github.com/example/manutencao-ar/internal/config"
	"github.com/example/manutencao-ar/internal/store"
)

// Server agrupa as dependências dos handlers HTTP.
type Server struct {
	cfg          *config.Config
	log          *logrus.Logger
	users        *store.UserStore
	equipamentos *store.EquipamentoStore
	servicos     *store.ServicoStore
	relatorios   *store.RelatorioStore
	sessions     *auth.SessionStore
}

// NewServer monta o Server com stores sobre a conexão dada.
func NewServer(cfg *config.Config, gdb *gorm.DB, log *logrus.Logger) *Server {
	return &Server{
		cfg:          cfg,
		log:          log,
		users:        store.NewUserStore(gdb),
		equipamentos: store.NewEquipamentoStore(gdb),
		servicos:     store.NewServicoStore(gdb),
		relatorios:   store.NewRelatorioStore(gdb),
		sessions:     auth.NewSessionStore(gdb),
	}
}

// Sessions expõe o SessionStore para o middleware de rotas.
func (s *Server) Sessions() *auth.SessionStore {
	return s.sessions
}
