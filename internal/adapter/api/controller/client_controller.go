package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/cadastro-clientes/internal/adapter/api/dto"
	"github.com/hugohenrick/cadastro-clientes/internal/adapter/repository"
	"github.com/hugohenrick/cadastro-clientes/internal/domain/client"
	"github.com/hugohenrick/cadastro-clientes/pkg/logger"
)

// ClientController gerencia as requisições relacionadas a clientes
type ClientController struct {
	clientRepo client.Repository
	logger     logger.Logger
}

// NewClientController cria uma nova instância de ClientController
func NewClientController(clientRepo client.Repository, logger logger.Logger) *ClientController {
	return &ClientController{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// List retorna todos os clientes cadastrados
// @Summary Listar clientes
// @Description Retorna a lista completa de clientes
// @Tags clientes
// @Produce json
// @Success 200 {array} dto.ClientResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes [get]
func (c *ClientController) List(ctx *gin.Context) {
	clients, err := c.clientRepo.List(ctx)
	if err != nil {
		c.internalError(ctx, "erro ao listar clientes", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientListResponse(clients))
}

// Create cria um novo cliente
// @Summary Criar cliente
// @Description Cria um novo cliente após validar CNPJ e demais campos
// @Tags clientes
// @Accept json
// @Produce json
// @Param cliente body client.CreateInput true "Dados do cliente"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes [post]
func (c *ClientController) Create(ctx *gin.Context) {
	var in client.CreateInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(map[string]string{
			"body": "JSON inválido",
		}))
		return
	}

	// Validação autoritativa: o formulário pode ser contornado
	if issues := in.Validate(); len(issues) > 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(issues))
		return
	}

	newClient := in.ToClient()
	if err := c.clientRepo.Create(ctx, newClient); err != nil {
		if errors.Is(err, repository.ErrClientDuplicateCNPJ) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse("CNPJ já cadastrado"))
			return
		}
		c.internalError(ctx, "erro ao criar cliente", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClientResponse(newClient))
}

// Update atualiza um cliente com payload parcial
// @Summary Atualizar cliente
// @Description Atualiza somente os campos informados do cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param id path int true "ID do cliente"
// @Param cliente body client.UpdateInput true "Campos a atualizar"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes/{id} [put]
func (c *ClientController) Update(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	var in client.UpdateInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(map[string]string{
			"body": "JSON inválido",
		}))
		return
	}

	if issues := in.Validate(); len(issues) > 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(issues))
		return
	}

	stored, err := c.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("Cliente não encontrado"))
			return
		}
		c.internalError(ctx, "erro ao buscar cliente", err)
		return
	}

	in.Apply(stored)

	if err := c.clientRepo.Update(ctx, stored); err != nil {
		switch {
		case errors.Is(err, repository.ErrClientNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("Cliente não encontrado"))
		case errors.Is(err, repository.ErrClientDuplicateCNPJ):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse("CNPJ já cadastrado"))
		default:
			c.internalError(ctx, "erro ao atualizar cliente", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(stored))
}

// Delete exclui um cliente
// @Summary Excluir cliente
// @Description Exclui um cliente do sistema
// @Tags clientes
// @Produce json
// @Param id path int true "ID do cliente"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes/{id} [delete]
func (c *ClientController) Delete(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	if err := c.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("Cliente não encontrado"))
			return
		}
		c.internalError(ctx, "erro ao excluir cliente", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Cliente excluído com sucesso"})
}

// parseID lê o parâmetro :id; inteiro positivo é obrigatório
func (c *ClientController) parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(map[string]string{
			"id": "ID deve ser um número positivo",
		}))
		return 0, false
	}
	return id, true
}

// internalError registra o erro com detalhe e responde com mensagem
// genérica, sem vazar detalhes internos ao chamador
func (c *ClientController) internalError(ctx *gin.Context, msg string, err error) {
	c.logger.Error(msg, "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Erro interno do servidor"))
}
