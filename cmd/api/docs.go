package main

// @title           PDV Varejo API
// @version         1.0
// @description     API do terminal de ponto de venda: catálogo, seções, carrinho multi-abas e checkout

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1
