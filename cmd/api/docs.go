package main

// @title           Cadastro de Clientes API
// @version         1.0
// @description     API para cadastro de empresas clientes identificadas por CNPJ

// @contact.name   API Support

// @host      localhost:3000
// @BasePath  /api
