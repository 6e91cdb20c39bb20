package sale

import "errors"

var (
	// ErrNoSectionSelected indica que nenhuma seção de vendas está ativa
	ErrNoSectionSelected = errors.New("selecione uma seção de vendas primeiro")

	// ErrMissingCustomerContact indica celular do cliente ausente no checkout
	ErrMissingCustomerContact = errors.New("celular do cliente é obrigatório")

	// ErrEmptyCart indica checkout com carrinho vazio
	ErrEmptyCart = errors.New("o carrinho está vazio")

	// ErrCheckoutInProgress indica checkout reentrante: já existe um envio
	// em andamento para a venda e ele é o autoritativo
	ErrCheckoutInProgress = errors.New("envio da venda já está em andamento")

	// ErrInstanceNotFound indica que a aba de venda não existe
	ErrInstanceNotFound = errors.New("venda não encontrada")

	// ErrLineNotFound indica índice de item inexistente no carrinho
	ErrLineNotFound = errors.New("item não encontrado no carrinho")

	// ErrLastInstance indica tentativa de fechar a única aba restante
	ErrLastInstance = errors.New("a última aba de venda não pode ser fechada")
)
